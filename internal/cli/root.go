// Package cli implements the plspec command line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-spectra/internal/config"
	"github.com/cwbudde/algo-spectra/internal/logging"
	"github.com/cwbudde/algo-spectra/internal/store"
)

// version is set at build time with -ldflags "-X ...cli.version=...".
var version = "dev"

var (
	configPath string
	dbPath     string
	logLevel   string
	devLog     bool

	appConfig = config.Default()
	logger    = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "plspec",
	Short: "Photoluminescence spectrum analysis",
	Long: `plspec preprocesses photoluminescence spectra, detects emission peaks,
synthesizes model curves from them and reports goodness of fit and intensity
statistics. Results can be stored in a local database and exported as CSV,
Excel or Parquet files.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "TOML configuration file")
	pf.StringVar(&dbPath, "db", "", "result database (default ~/.plspec/plspec.db)")
	pf.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.BoolVar(&devLog, "dev", false, "human readable development logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func setup(cmd *cobra.Command, _ []string) error {
	appConfig = config.Default()
	if configPath != "" {
		f, err := config.Load(configPath)
		if err != nil {
			return err
		}
		appConfig = f
	}

	level := logLevel
	if level == "" {
		level = appConfig.LogLevel
	}
	log, err := logging.New(logging.WithLevel(level), logging.WithDevelopment(devLog))
	if err != nil {
		return err
	}
	logger = log.With(zap.String("command", cmd.Name()))
	return nil
}

func openStore() (*store.Store, error) {
	path := dbPath
	if path == "" {
		path = appConfig.Database
	}
	s, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening result database: %w", err)
	}
	return s, nil
}
