package render

import (
	"fmt"

	"github.com/svasyly/astronomy-tools-public/internal/domain/lightcurve"
)

// Axis and legend labels for light curve figures.
const (
	TimeLabel       = "Time"
	LuminosityLabel = "Luminosity (erg s⁻¹)"
	SeriesLabel     = "L_bol"
)

// Figure is a single-series line plot. Y is plotted on a log10 axis when
// LogY is set.
type Figure struct {
	Title  string
	XLabel string
	YLabel string
	Series string
	X      []float64
	Y      []float64
	LogY   bool
}

// LightCurveFigure plots the linear luminosity of a time-sorted record.
func LightCurveFigure(name string, rec lightcurve.Record, sum lightcurve.Summary) Figure {
	return Figure{
		Title:  fmt.Sprintf("Bolometric Light Curve - %s", name),
		XLabel: TimeLabel,
		YLabel: LuminosityLabel,
		Series: SeriesLabel,
		X:      rec.Times(),
		Y:      sum.Linear,
		LogY:   true,
	}
}

// Image is a rendered figure.
type Image struct {
	Title  string
	Width  int
	Height int
	PNG    []byte
}
