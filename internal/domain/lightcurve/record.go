// Package lightcurve holds the bolometric light curve record, its fixed
// column schema and the values derived from it.
package lightcurve

import (
	"sort"
)

// Columns is the positional schema of a data row. Files carry no header
// with these names; they are assigned by position.
var Columns = [NumColumns]string{"time", "L_ubvri", "L_bol", "XEUV<325", "IR>890"}

// NumColumns is the number of tokens every data row must have.
const NumColumns = 5

// Row is one measurement.
type Row struct {
	Index  int     // zero-based data row position in the file, before sorting
	Time   float64 // epoch
	LUBVRI float64 // log10 luminosity integrated over UBVRI
	LBol   float64 // log10 bolometric luminosity
	XEUV   float64 // extreme UV contribution, < 325 nm
	IR     float64 // infrared contribution, > 890 nm
}

// Values returns the row fields in schema order.
func (r Row) Values() [NumColumns]float64 {
	return [NumColumns]float64{r.Time, r.LUBVRI, r.LBol, r.XEUV, r.IR}
}

// Record is a parsed light curve file.
type Record struct {
	Path string
	Rows []Row
}

// Len returns the number of rows.
func (r Record) Len() int { return len(r.Rows) }

// SortByTime orders rows by ascending time. Equal times keep file order.
func (r *Record) SortByTime() {
	sort.SliceStable(r.Rows, func(i, j int) bool {
		return r.Rows[i].Time < r.Rows[j].Time
	})
}

// Head returns up to n leading rows.
func (r Record) Head(n int) []Row {
	if n < 0 {
		n = 0
	}
	if n > len(r.Rows) {
		n = len(r.Rows)
	}
	return r.Rows[:n]
}

// Times returns the time column.
func (r Record) Times() []float64 {
	out := make([]float64, len(r.Rows))
	for i, row := range r.Rows {
		out[i] = row.Time
	}
	return out
}
