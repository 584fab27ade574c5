// Package logging builds the zap loggers used by the command line tool.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Option mutates the zap configuration before the logger is built.
type Option func(*zap.Config)

// WithLevel sets the minimum enabled level. Unknown names fall back to
// info.
func WithLevel(level string) Option {
	return func(cfg *zap.Config) {
		cfg.Level = zap.NewAtomicLevelAt(ParseLevel(level))
	}
}

// WithDevelopment switches to the human readable console encoder.
func WithDevelopment(dev bool) Option {
	return func(cfg *zap.Config) {
		if !dev {
			return
		}
		level := cfg.Level
		*cfg = zap.NewDevelopmentConfig()
		cfg.Level = level
	}
}

// WithOutput sets the output paths, e.g. "stderr" or a file path.
func WithOutput(paths ...string) Option {
	return func(cfg *zap.Config) {
		if len(paths) > 0 {
			cfg.OutputPaths = paths
		}
	}
}

// WithFields attaches fields to every log line.
func WithFields(fields map[string]any) Option {
	return func(cfg *zap.Config) {
		if cfg.InitialFields == nil {
			cfg.InitialFields = map[string]any{}
		}
		for k, v := range fields {
			if k != "" {
				cfg.InitialFields[k] = v
			}
		}
	}
}

// New builds a production logger writing JSON to stderr at info level,
// adjusted by opts.
func New(opts ...Option) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return log, nil
}

// ParseLevel converts a level name to a zap level, defaulting to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
