// Package render draws light curve figures to PNG with go-chart.
package render

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
)

const maxDecadeTicks = 10

// Renderer turns figures into PNG images. A Renderer holds only its style and
// is safe for concurrent use.
type Renderer struct {
	style Style
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithStyle replaces the default style.
func WithStyle(s Style) Option {
	return func(r *Renderer) {
		r.style = s
	}
}

// New creates a Renderer with DefaultStyle unless overridden.
func New(opts ...Option) *Renderer {
	r := &Renderer{style: DefaultStyle()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Style returns the renderer's style.
func (r *Renderer) Style() Style {
	return r.style
}

// Render draws fig and encodes it as PNG.
func (r *Renderer) Render(fig Figure) (Image, error) {
	ch, err := r.Chart(fig)
	if err != nil {
		return Image{}, err
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return Image{}, fmt.Errorf("%w: %s: %w", ErrRender, fig.Title, err)
	}

	return Image{
		Title:  fig.Title,
		Width:  ch.Width,
		Height: ch.Height,
		PNG:    buf.Bytes(),
	}, nil
}

// Chart builds the go-chart value for fig without rendering it. Points that
// cannot be placed on the axes (non-finite, or non-positive on a log axis)
// are dropped.
func (r *Renderer) Chart(fig Figure) (chart.Chart, error) {
	xs, ys := plottable(fig)
	if len(xs) == 0 {
		return chart.Chart{}, fmt.Errorf("%w: %s: no plottable points", ErrRender, fig.Title)
	}

	xr := paddedRange(xs)
	var yr chart.ContinuousRange
	var yTicks []chart.Tick
	if fig.LogY {
		yr, yTicks = decadeRange(ys)
	} else {
		yr = paddedRange(ys)
	}

	s := r.style
	grid := chart.Style{
		StrokeColor: s.gridColor(),
		StrokeWidth: 1,
	}

	ch := chart.Chart{
		Title:      fig.Title,
		TitleStyle: chart.Style{FontSize: s.TitleFontSize},
		Width:      s.Width,
		Height:     s.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:           fig.XLabel,
			NameStyle:      chart.Style{FontSize: s.LabelFontSize},
			Range:          &xr,
			ValueFormatter: formatValue,
			GridMajorStyle: grid,
			GridMinorStyle: grid,
		},
		YAxis: chart.YAxis{
			Name:           fig.YLabel,
			NameStyle:      chart.Style{FontSize: s.LabelFontSize},
			Range:          &yr,
			Ticks:          yTicks,
			ValueFormatter: formatValue,
			GridMajorStyle: grid,
			GridMinorStyle: grid,
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    fig.Series,
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: s.lineColor(),
					StrokeWidth: s.LineWidth,
				},
			},
		},
	}
	ch.Elements = []chart.Renderable{
		chart.Legend(&ch, chart.Style{FontSize: s.LegendFontSize}),
	}
	return ch, nil
}

func plottable(fig Figure) ([]float64, []float64) {
	n := len(fig.X)
	if len(fig.Y) < n {
		n = len(fig.Y)
	}
	xs := make([]float64, 0, n)
	ys := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		x, y := fig.X[i], fig.Y[i]
		if !finite(x) || !finite(y) {
			continue
		}
		if fig.LogY {
			if y <= 0 {
				continue
			}
			y = math.Log10(y)
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// paddedRange spans vs, widened by one unit when every value is equal.
func paddedRange(vs []float64) chart.ContinuousRange {
	lo, hi := vs[0], vs[0]
	for _, v := range vs[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}
	return chart.ContinuousRange{Min: lo, Max: hi}
}

// decadeRange takes log10 values and snaps the range outward to whole decades.
func decadeRange(logs []float64) (chart.ContinuousRange, []chart.Tick) {
	lo, hi := logs[0], logs[0]
	for _, v := range logs[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	lo, hi = math.Floor(lo), math.Ceil(hi)
	if lo == hi {
		hi++
	}
	return chart.ContinuousRange{Min: lo, Max: hi}, DecadeTicks(int(lo), int(hi))
}

// DecadeTicks labels powers of ten from 10^lo to 10^hi in log10 space. The
// step grows so the axis never has more than ten intervals.
func DecadeTicks(lo, hi int) []chart.Tick {
	if hi < lo {
		lo, hi = hi, lo
	}
	step := 1
	if span := hi - lo; span > maxDecadeTicks {
		step = (span + maxDecadeTicks - 1) / maxDecadeTicks
	}
	var ticks []chart.Tick
	for e := lo; e <= hi; e += step {
		ticks = append(ticks, chart.Tick{Value: float64(e), Label: fmt.Sprintf("1e%+d", e)})
	}
	return ticks
}

func formatValue(v interface{}) string {
	if f, ok := v.(float64); ok {
		return strconv.FormatFloat(f, 'g', 6, 64)
	}
	return fmt.Sprint(v)
}
