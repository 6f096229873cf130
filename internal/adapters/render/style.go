package render

import (
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/svasyly/astronomy-tools-public/internal/config"
)

// Style is the figure styling applied by a Renderer. It is a plain value so
// two renderers never share mutable plot state.
type Style struct {
	Width  int
	Height int

	// LineColor is hex RGB, with or without a leading '#'.
	LineColor string
	LineWidth float64
	GridAlpha float64

	TitleFontSize  float64
	LabelFontSize  float64
	LegendFontSize float64
}

// DefaultStyle is a 12x8 inch figure at 100 dpi with a red 2px line.
func DefaultStyle() Style {
	return Style{
		Width:          1200,
		Height:         800,
		LineColor:      "ff0000",
		LineWidth:      2,
		GridAlpha:      0.3,
		TitleFontSize:  16,
		LabelFontSize:  14,
		LegendFontSize: 12,
	}
}

func (s Style) lineColor() drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(s.LineColor, "#"))
}

func (s Style) gridColor() drawing.Color {
	a := s.GridAlpha
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return drawing.ColorBlack.WithAlpha(uint8(a * 255))
}

// FromConfig converts configured styling into a render Style.
func FromConfig(c config.Style) Style {
	return Style{
		Width:          c.Width,
		Height:         c.Height,
		LineColor:      c.LineColor,
		LineWidth:      c.LineWidth,
		GridAlpha:      c.GridAlpha,
		TitleFontSize:  c.TitleFontSize,
		LabelFontSize:  c.LabelFontSize,
		LegendFontSize: c.LegendFontSize,
	}
}
