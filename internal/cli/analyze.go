package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-spectra/analysis"
	"github.com/cwbudde/algo-spectra/internal/chart"
	"github.com/cwbudde/algo-spectra/internal/export"
	"github.com/cwbudde/algo-spectra/internal/ingest"
	"github.com/cwbudde/algo-spectra/internal/store"
)

var (
	analyzeSample      string
	analyzeModel       string
	analyzeProminence  float64
	analyzeMinHeight   float64
	analyzeSave        bool
	analyzeOutDir      string
	analyzeFormats     string
	analyzeChartFormat string
	analyzeJSON        bool
	analyzeWorkers     int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>...",
	Short: "Analyze one or more spectrum files",
	Long: `Analyze reads spectra from CSV, TSV or Excel files, runs preprocessing,
peak detection and curve fitting on each, and prints the detected peaks.

The sample id defaults to the file name without its extension.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	f := analyzeCmd.Flags()
	f.StringVarP(&analyzeSample, "sample", "s", "", "sample id (single file only)")
	f.StringVarP(&analyzeModel, "model", "m", "", "peak model: gaussian, lorentzian, voigt")
	f.Float64Var(&analyzeProminence, "prominence", -1, "minimum peak prominence (negative = from config)")
	f.Float64Var(&analyzeMinHeight, "min-height", -1, "minimum peak height (negative = from config)")
	f.BoolVar(&analyzeSave, "save", false, "store the results in the result database")
	f.StringVarP(&analyzeOutDir, "out", "o", "", "directory for exported files")
	f.StringVarP(&analyzeFormats, "format", "f", "csv", "comma separated export formats: csv, xlsx, parquet")
	f.StringVar(&analyzeChartFormat, "chart", "", "also render a chart in this format (png, svg, pdf)")
	f.BoolVar(&analyzeJSON, "json", false, "print results as JSON")
	f.IntVarP(&analyzeWorkers, "workers", "j", 0, "number of samples analyzed in parallel (0 = all)")
	rootCmd.AddCommand(analyzeCmd)
}

type analyzeOutput struct {
	SampleID    string           `json:"sample_id"`
	Source      string           `json:"source"`
	Result      *analysis.Result `json:"result,omitempty"`
	Error       string           `json:"error,omitempty"`
	Limitations []string         `json:"limitations,omitempty"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analyzeSample != "" && len(args) > 1 {
		return errors.New("--sample can only be used with a single file")
	}

	cfg, err := analysisConfig()
	if err != nil {
		return err
	}

	samples := make([]analysis.Sample, 0, len(args))
	for _, path := range args {
		sp, err := ingest.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		id := analyzeSample
		if id == "" {
			id = sampleID(path)
		}
		samples = append(samples, analysis.Sample{ID: id, Spectrum: sp, Config: cfg})
	}

	opts := []analysis.Option{analysis.WithLogger(logger)}
	if analyzeWorkers > 0 {
		opts = append(opts, analysis.WithConcurrency(analyzeWorkers))
	}
	results := analysis.New(opts...).AnalyzeBatch(samples)

	var st *store.Store
	if analyzeSave {
		st, err = openStore()
		if err != nil {
			return err
		}
		defer st.Close()
	}

	ctx := cmd.Context()
	var (
		outputs []analyzeOutput
		failed  int
	)
	out := cmd.OutOrStdout()
	for i, br := range results {
		o := analyzeOutput{SampleID: br.SampleID, Source: args[i], Limitations: limitations(cfg)}
		if br.Err != nil {
			failed++
			o.Error = br.Err.Error()
			outputs = append(outputs, o)
			if !analyzeJSON {
				cmd.PrintErrf("Sample %s: %v\n", br.SampleID, br.Err)
			}
			continue
		}
		res := br.Result
		o.Result = &res
		outputs = append(outputs, o)

		if st != nil {
			if err := saveResult(ctx, st, samples[i], res); err != nil {
				return err
			}
		}
		if analyzeOutDir != "" {
			if err := exportResult(br.SampleID, res); err != nil {
				return err
			}
		}

		if analyzeJSON {
			continue
		}
		if i > 0 {
			fmt.Fprintln(out)
		}
		if err := printResult(out, br.SampleID, res); err != nil {
			return err
		}
	}

	if analyzeJSON {
		if err := writeJSON(out, outputs); err != nil {
			return err
		}
	} else {
		for _, l := range limitations(cfg) {
			cmd.PrintErrf("Note: %s\n", l)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d samples failed", failed, len(results))
	}
	return nil
}

// analysisConfig returns the file configuration with command line
// overrides applied.
func analysisConfig() (analysis.Config, error) {
	file := appConfig
	if analyzeModel != "" {
		file.Model = analyzeModel
	}
	if analyzeProminence >= 0 {
		file.Detection.Prominence = analyzeProminence
	}
	if analyzeMinHeight >= 0 {
		file.Detection.MinHeight = analyzeMinHeight
	}
	return file.Analysis()
}

func sampleID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func saveResult(ctx context.Context, st *store.Store, sample analysis.Sample, res analysis.Result) error {
	rec := analysis.NewRecord(sample.ID, sample.Config, res)
	if err := st.SaveRecord(ctx, rec); err != nil {
		return err
	}
	if err := st.SaveSpectrum(ctx, sample.ID, store.KindRaw, sample.Spectrum); err != nil {
		return err
	}
	if err := st.SaveSpectrum(ctx, sample.ID, store.KindProcessed, res.Processed); err != nil {
		return err
	}
	if res.Fitting != nil {
		if err := st.SaveSpectrum(ctx, sample.ID, store.KindFitted, res.Fitting.Fitted); err != nil {
			return err
		}
	}
	logger.Info("result saved",
		zap.String("sample", sample.ID),
		zap.String("record", rec.ID.String()),
	)
	return nil
}

func exportResult(sampleID string, res analysis.Result) error {
	if err := os.MkdirAll(analyzeOutDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	report := export.NewReport(sampleID, res)

	for _, format := range strings.Split(analyzeFormats, ",") {
		var err error
		switch strings.ToLower(strings.TrimSpace(format)) {
		case "":
		case "csv":
			err = exportCSV(sampleID, res)
		case "xlsx":
			err = writeFile(sampleID+".xlsx", func(f *os.File) error {
				return export.WriteWorkbook(f, report)
			})
		case "parquet":
			comp := export.Compression(appConfig.Export.ParquetCompression)
			err = writeFile(sampleID+"_spectrum.parquet", func(f *os.File) error {
				return export.WriteSpectrumParquet(f, sampleID, res.Processed, comp)
			})
			if err == nil {
				err = writeFile(sampleID+"_peaks.parquet", func(f *os.File) error {
					return export.WritePeaksParquet(f, sampleID, res.Peaks, comp)
				})
			}
		default:
			err = fmt.Errorf("unknown export format %q", format)
		}
		if err != nil {
			return err
		}
	}

	if analyzeChartFormat != "" {
		in := chart.Input{Title: sampleID, Processed: res.Processed, Peaks: res.Peaks}
		if res.Fitting != nil {
			in.Fitted = res.Fitting.Fitted
		}
		format := strings.ToLower(analyzeChartFormat)
		if err := writeFile(sampleID+"."+format, func(f *os.File) error {
			return chart.Render(f, in, format)
		}); err != nil {
			return err
		}
	}
	return nil
}

func exportCSV(sampleID string, res analysis.Result) error {
	err := writeFile(sampleID+"_processed.csv", func(f *os.File) error {
		return export.WriteSpectrumCSV(f, res.Processed)
	})
	if err != nil {
		return err
	}
	if res.Fitting != nil {
		err = writeFile(sampleID+"_fitted.csv", func(f *os.File) error {
			return export.WriteSpectrumCSV(f, res.Fitting.Fitted)
		})
		if err != nil {
			return err
		}
	}
	return writeFile(sampleID+"_peaks.csv", func(f *os.File) error {
		return export.WritePeaksCSV(f, res.Peaks)
	})
}

func writeFile(name string, write func(*os.File) error) error {
	path := filepath.Join(analyzeOutDir, name)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Debug("file written", zap.String("path", path))
	return nil
}
