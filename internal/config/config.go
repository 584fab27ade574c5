// Package config loads analysis settings from TOML files.
//
// A configuration file mirrors the analysis configuration:
//
//	model = "gaussian"
//	log_level = "info"
//
//	[detection]
//	prominence = 0.1
//	min_height = 0.05
//
//	[preprocessing.noise_reduction]
//	window_length = 11
//	polynomial_order = 3
//
//	[preprocessing.baseline_correction]
//	method = "polynomial"
//	polynomial_degree = 2
//
//	[preprocessing.normalization]
//	method = "max"
//
// Omitted preprocessing tables disable the corresponding stage.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/cwbudde/algo-spectra/analysis"
	"github.com/cwbudde/algo-spectra/dsp/fit"
	"github.com/cwbudde/algo-spectra/dsp/peak"
	"github.com/cwbudde/algo-spectra/dsp/preprocess"
)

// File is the on-disk configuration.
type File struct {
	Model         string        `toml:"model"`
	LogLevel      string        `toml:"log_level,omitempty"`
	Database      string        `toml:"database,omitempty"`
	Detection     Detection     `toml:"detection"`
	Preprocessing Preprocessing `toml:"preprocessing"`
	Export        Export        `toml:"export"`
}

// Detection holds peak detection thresholds.
type Detection struct {
	Prominence float64 `toml:"prominence"`
	MinHeight  float64 `toml:"min_height"`
}

// Preprocessing holds the optional preprocessing stages.
type Preprocessing struct {
	OutlierRemoval     *OutlierRemoval     `toml:"outlier_removal,omitempty"`
	NoiseReduction     *NoiseReduction     `toml:"noise_reduction,omitempty"`
	BaselineCorrection *BaselineCorrection `toml:"baseline_correction,omitempty"`
	Normalization      *Normalization      `toml:"normalization,omitempty"`
}

type OutlierRemoval struct {
	Enabled   bool    `toml:"enabled"`
	Threshold float64 `toml:"threshold,omitempty"`
}

type NoiseReduction struct {
	WindowLength    int `toml:"window_length"`
	PolynomialOrder int `toml:"polynomial_order,omitempty"`
}

type BaselineCorrection struct {
	Method           string  `toml:"method"`
	PolynomialDegree int     `toml:"polynomial_degree,omitempty"`
	Lambda           float64 `toml:"lambda,omitempty"`
	P                float64 `toml:"p,omitempty"`
}

type Normalization struct {
	Method string `toml:"method"`
}

// Export holds export settings.
type Export struct {
	ParquetCompression string `toml:"parquet_compression,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() File {
	def := analysis.DefaultConfig()
	return File{
		Model:    string(def.Model),
		LogLevel: "info",
		Detection: Detection{
			Prominence: def.Detection.Prominence,
			MinHeight:  def.Detection.MinHeight,
		},
	}
}

// Load reads and parses the file at path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}
	f, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes TOML data on top of [Default]. Unknown keys are an error.
func Parse(data []byte) (File, error) {
	f := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return File{}, fmt.Errorf("parsing config: %w", err)
	}
	return f, nil
}

// Write encodes f as TOML.
func Write(w io.Writer, f File) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	return enc.Encode(f)
}

// Analysis converts f into a validated analysis configuration.
func (f File) Analysis() (analysis.Config, error) {
	model, err := fit.ParseModel(f.Model)
	if err != nil {
		return analysis.Config{}, err
	}

	cfg := analysis.Config{
		Model: model,
		Detection: peak.Params{
			Prominence: f.Detection.Prominence,
			MinHeight:  f.Detection.MinHeight,
		},
		Preprocessing: f.Preprocessing.engine(),
	}
	if err := cfg.Validate(); err != nil {
		return analysis.Config{}, err
	}
	return cfg, nil
}

func (p Preprocessing) engine() preprocess.Config {
	var cfg preprocess.Config
	if o := p.OutlierRemoval; o != nil {
		cfg.OutlierRemoval = &preprocess.OutlierRemoval{Enabled: o.Enabled, Threshold: o.Threshold}
	}
	if n := p.NoiseReduction; n != nil {
		cfg.NoiseReduction = &preprocess.NoiseReduction{WindowLength: n.WindowLength, PolynomialOrder: n.PolynomialOrder}
	}
	if b := p.BaselineCorrection; b != nil {
		cfg.BaselineCorrection = &preprocess.BaselineCorrection{
			Method:           preprocess.BaselineMethod(b.Method),
			PolynomialDegree: b.PolynomialDegree,
			Lambda:           b.Lambda,
			P:                b.P,
		}
	}
	if n := p.Normalization; n != nil {
		cfg.Normalization = &preprocess.Normalization{Method: preprocess.NormalizationMethod(n.Method)}
	}
	return cfg
}
