// Package chart renders analysis results as plots.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/cwbudde/algo-spectra/dsp/peak"
	"github.com/cwbudde/algo-spectra/spectrum"
)

// ErrNothingToPlot is returned when the input holds no processed points.
var ErrNothingToPlot = errors.New("chart: nothing to plot")

// Default canvas size.
const (
	DefaultWidth  = 8 * vg.Inch
	DefaultHeight = 5 * vg.Inch
)

var (
	dataColor = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	fitColor  = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
	peakColor = color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}
)

// Input is the data of one chart.
type Input struct {
	Title     string
	Processed spectrum.Spectrum
	Fitted    spectrum.Spectrum // optional
	Peaks     []peak.Peak       // optional
	Width     vg.Length         // 0 means DefaultWidth
	Height    vg.Length         // 0 means DefaultHeight
}

// Formats lists the accepted format names.
var Formats = []string{"png", "svg", "pdf", "eps", "jpg", "tif"}

// Render draws in as a scatter of the processed points, a line for the
// fitted curve and markers at the peaks, and writes it to w in format.
func Render(w io.Writer, in Input, format string) error {
	p, err := build(in)
	if err != nil {
		return err
	}

	width, height := in.Width, in.Height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	wt, err := p.WriterTo(width, height, strings.ToLower(format))
	if err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}

func build(in Input) (*plot.Plot, error) {
	if len(in.Processed) == 0 {
		return nil, ErrNothingToPlot
	}

	p := plot.New()
	p.Title.Text = in.Title
	p.X.Label.Text = "Wavelength (nm)"
	p.Y.Label.Text = "Intensity (a.u.)"
	p.Add(plotter.NewGrid())

	data, err := plotter.NewScatter(xys(in.Processed))
	if err != nil {
		return nil, fmt.Errorf("chart: processed: %w", err)
	}
	data.GlyphStyle.Color = dataColor
	data.GlyphStyle.Radius = vg.Points(1.5)
	data.Shape = draw.CircleGlyph{}
	p.Add(data)
	p.Legend.Add("processed", data)

	if len(in.Fitted) > 0 {
		fit, err := plotter.NewLine(xys(in.Fitted))
		if err != nil {
			return nil, fmt.Errorf("chart: fitted: %w", err)
		}
		fit.LineStyle.Color = fitColor
		fit.LineStyle.Width = vg.Points(1.5)
		p.Add(fit)
		p.Legend.Add("fitted", fit)
	}

	if len(in.Peaks) > 0 {
		pts := make(plotter.XYs, len(in.Peaks))
		for i, pk := range in.Peaks {
			pts[i] = plotter.XY{X: pk.Position, Y: pk.Amplitude}
		}
		markers, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, fmt.Errorf("chart: peaks: %w", err)
		}
		markers.GlyphStyle.Color = peakColor
		markers.GlyphStyle.Radius = vg.Points(4)
		markers.Shape = draw.TriangleGlyph{}
		p.Add(markers)
		p.Legend.Add("peaks", markers)
	}

	p.Legend.Top = true
	return p, nil
}

func xys(s spectrum.Spectrum) plotter.XYs {
	out := make(plotter.XYs, len(s))
	for i, pt := range s {
		out[i] = plotter.XY{X: pt.Wavelength, Y: pt.Intensity}
	}
	return out
}
