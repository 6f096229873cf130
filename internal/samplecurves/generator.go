// Package samplecurves writes synthetic short-plateau light curves for
// exercising the plotter.
package samplecurves

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"math/rand"
	"strconv"

	"github.com/google/uuid"

	"github.com/svasyly/astronomy-tools-public/internal/domain/lightcurve"
)

// Shape is the set of parameters of one synthetic curve.
type Shape struct {
	Peak      float64 // log10 peak luminosity
	Rise      float64 // days from explosion to peak
	Plateau   float64 // plateau length in days
	Drop      float64 // length of the fall off the plateau in days
	DropDex   float64 // luminosity lost during the fall
	BolOffset float64 // L_bol - L_ubvri
}

// End returns the last day covered by the curve.
func (s Shape) End() float64 {
	return s.Rise + s.Plateau + s.Drop + tailDays
}

// LogL returns the noise-free log10 L_ubvri at day t.
func (s Shape) LogL(t float64) float64 {
	plateauEnd := s.Rise + s.Plateau
	dropEnd := plateauEnd + s.Drop
	switch {
	case t < s.Rise:
		f := 1 - t/s.Rise
		return s.Peak - riseDepth*f*f
	case t < plateauEnd:
		return s.Peak - plateauDecline*(t-s.Rise)/s.Plateau
	case t < dropEnd:
		return s.Peak - plateauDecline - s.DropDex*(t-plateauEnd)/s.Drop
	default:
		return s.Peak - plateauDecline - s.DropDex - tailSlope*(t-dropEnd)
	}
}

// Generator produces curves and file names from a seeded source, so a seed
// always reproduces the same files.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator for seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))} //nolint:gosec // synthetic data, not security sensitive
}

// Shape draws random curve parameters.
func (g *Generator) Shape() Shape {
	return Shape{
		Peak:      peakMin + g.rng.Float64()*peakRange,
		Rise:      riseMin + g.rng.Float64()*riseRange,
		Plateau:   plateauMin + g.rng.Float64()*plateauRange,
		Drop:      dropMin + g.rng.Float64()*dropRange,
		DropDex:   dropDexMin + g.rng.Float64()*dropDexRange,
		BolOffset: bolOffsetMin + g.rng.Float64()*(bolOffsetMax-bolOffsetMin),
	}
}

// Rows samples points rows of s at evenly spaced, jittered epochs.
func (g *Generator) Rows(s Shape, points int) []lightcurve.Row {
	step := s.End() / float64(points)
	rows := make([]lightcurve.Row, points)
	for i := range rows {
		t := (float64(i) + 0.5 + (g.rng.Float64()-0.5)*0.8) * step
		l := s.LogL(t) + g.rng.NormFloat64()*noiseSigma
		rows[i] = lightcurve.Row{
			Index:  i,
			Time:   round(t, 3),
			LUBVRI: round(l, 4),
			LBol:   round(l+s.BolOffset, 4),
			XEUV:   round(l-0.4-0.004*t, 4),
			IR:     round(l-1.0+0.002*t, 4),
		}
	}
	return rows
}

// Name returns sp_<8 hex chars>.<ext>.
func (g *Generator) Name(ext string) (string, error) {
	id, err := uuid.NewRandomFromReader(g.rng)
	if err != nil {
		return "", fmt.Errorf("file name: %w", err)
	}
	return "sp_" + id.String()[:8] + "." + ext, nil
}

// Write emits the header and rows. With malformed set, a row with only
// three tokens is inserted halfway through.
func Write(w io.Writer, rows []lightcurve.Row, malformed bool) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, Header); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	for i, row := range rows {
		if malformed && i == len(rows)/2 {
			fmt.Fprintf(bw, "%s %s %s\n", ff(row.Time), ff(row.LUBVRI), ff(row.LBol))
		}
		v := row.Values()
		fmt.Fprintf(bw, "%s %s %s %s %s\n", ff(v[0]), ff(v[1]), ff(v[2]), ff(v[3]), ff(v[4]))
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

func ff(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
