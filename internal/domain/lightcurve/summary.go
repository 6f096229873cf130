package lightcurve

import (
	"math"
)

// Summary holds the values derived from a time-sorted record.
type Summary struct {
	// Linear is 10^L_ubvri for every row, in row order.
	Linear []float64

	// PeakIndex is the first row holding the largest L_ubvri. NaN values
	// never win; it is -1 when every value is NaN.
	PeakIndex  int
	PeakTime   float64
	PeakLog    float64
	PeakLinear float64

	TimeMin float64
	TimeMax float64
}

// HasPeak reports whether a peak row was found.
func (s Summary) HasPeak() bool { return s.PeakIndex >= 0 }

// Summarize derives the linear luminosity, the peak and the time range.
// The record should already be sorted by time so the peak tie-break follows
// time order.
func (r Record) Summarize() Summary {
	s := Summary{
		Linear:     make([]float64, len(r.Rows)),
		PeakIndex:  -1,
		PeakTime:   math.NaN(),
		PeakLog:    math.NaN(),
		PeakLinear: math.NaN(),
		TimeMin:    math.NaN(),
		TimeMax:    math.NaN(),
	}

	for i, row := range r.Rows {
		s.Linear[i] = math.Pow(10, row.LUBVRI)

		if !math.IsNaN(row.LUBVRI) && (s.PeakIndex < 0 || row.LUBVRI > r.Rows[s.PeakIndex].LUBVRI) {
			s.PeakIndex = i
		}
		if !math.IsNaN(row.Time) {
			if math.IsNaN(s.TimeMin) || row.Time < s.TimeMin {
				s.TimeMin = row.Time
			}
			if math.IsNaN(s.TimeMax) || row.Time > s.TimeMax {
				s.TimeMax = row.Time
			}
		}
	}

	if s.PeakIndex >= 0 {
		peak := r.Rows[s.PeakIndex]
		s.PeakTime = peak.Time
		s.PeakLog = peak.LUBVRI
		s.PeakLinear = s.Linear[s.PeakIndex]
	}
	return s
}
