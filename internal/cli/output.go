package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-spectra/analysis"
	"github.com/cwbudde/algo-spectra/dsp/fit"
	"github.com/cwbudde/algo-spectra/dsp/peak"
	"github.com/cwbudde/algo-spectra/dsp/preprocess"
)

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func printPeaks(w io.Writer, peaks []peak.Peak) error {
	if len(peaks) == 0 {
		_, err := fmt.Fprintln(w, "No peaks detected.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Position [nm]\tAmplitude\tFWHM [nm]\tArea\tProminence\n")
	fmt.Fprintf(tw, "-------------\t---------\t---------\t----\t----------\n")
	for _, p := range peaks {
		fmt.Fprintf(tw, "%.2f\t%.4g\t%.2f\t%.4g\t%.4g\n", p.Position, p.Amplitude, p.FWHM, p.Area, p.Prominence)
	}
	return tw.Flush()
}

func printResult(w io.Writer, sampleID string, res analysis.Result) error {
	fmt.Fprintf(w, "Sample %s: %d points, %d peaks (%s)\n", sampleID, res.Statistics.Points, len(res.Peaks), res.Outcome)
	if err := printPeaks(w, res.Peaks); err != nil {
		return err
	}

	if f := res.Fitting; f != nil {
		fmt.Fprintf(w, "Fit: model=%s", f.Model)
		if f.Profile != f.Model {
			fmt.Fprintf(w, " (evaluated as %s)", f.Profile)
		}
		fmt.Fprintf(w, " R²=%.4f RMSE=%.4g\n", f.RSquared, f.RMSE)
	}

	st := res.Statistics
	_, err := fmt.Fprintf(w, "Statistics: mean=%.4g std=%.4g min=%.4g max=%.4g area=%.4g\n",
		st.Mean, st.Std, st.Min, st.Max, st.TotalArea)
	return err
}

// limitations lists the configured options that run in a simplified form.
func limitations(cfg analysis.Config) []string {
	var out []string
	if n := cfg.Preprocessing.NoiseReduction; n != nil && n.PolynomialOrder > 0 && preprocess.SmoothingIsMovingAverage {
		out = append(out, "noise reduction is a moving average; polynomial_order is ignored")
	}
	if b := cfg.Preprocessing.BaselineCorrection; b != nil && b.Method == preprocess.BaselineALS && !preprocess.ALSImplemented {
		out = append(out, "als baseline correction is not implemented; the baseline is left unchanged")
	}
	if cfg.Model == fit.Voigt && fit.VoigtApproximated {
		out = append(out, "voigt profiles are evaluated as gaussian")
	}
	return out
}
