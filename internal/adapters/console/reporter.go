// Package console writes the human-readable plotting report.
package console

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"

	"github.com/svasyly/astronomy-tools-public/internal/domain/lightcurve"
)

var (
	statusColor = color.New(color.FgCyan)
	headerColor = color.New(color.FgYellow)
	errorColor  = color.New(color.FgRed)
	statColor   = color.New(color.FgGreen)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)
)

// Reporter prints run progress, previews and statistics to w.
type Reporter struct {
	w io.Writer
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// FoundFiles lists the discovered files, numbered from 1.
func (r *Reporter) FoundFiles(dir string, files []string) {
	statusColor.Fprintf(r.w, "Found %d files in directory %s\n", len(files), dir)
	for i, f := range files {
		fmt.Fprintf(r.w, "%d. %s\n", i+1, filepath.Base(f))
	}
}

func (r *Reporter) NoFiles(dir string) {
	errorColor.Fprintf(r.w, "No files found in directory: %s\n", dir)
}

func (r *Reporter) NameNotFound(name, dir string) {
	errorColor.Fprintf(r.w, "File %s not found in %s\n", name, dir)
}

func (r *Reporter) InvalidIndex(index, count int) {
	errorColor.Fprintf(r.w, "Invalid file index: %d. Must be between 0 and %d\n", index, count-1)
}

func (r *Reporter) Processing(name string) {
	headerColor.Fprintf(r.w, "\nProcessing file: %s\n", name)
}

// Preview prints rows as a table indexed by their position in the file.
func (r *Reporter) Preview(rows []lightcurve.Row) {
	fmt.Fprintln(r.w, "Data preview:")
	fmt.Fprintln(r.w, PreviewTable(rows))
}

// Statistics prints the peak and the time range of a summarized record.
func (r *Reporter) Statistics(name string, s lightcurve.Summary) {
	statColor.Fprintf(r.w, "Statistics for %s:\n", name)
	fmt.Fprintf(r.w, "Peak time: %.3f\n", s.PeakTime)
	fmt.Fprintf(r.w, "Peak luminosity: %.3f (log erg/s)\n", s.PeakLog)
	fmt.Fprintf(r.w, "Time range: %.3f to %.3f\n", s.TimeMin, s.TimeMax)
}

func (r *Reporter) FileError(name string, err error) {
	errorColor.Fprintf(r.w, "Error processing file %s: %v\n", name, err)
}

// PreviewTable renders rows with an index column and the schema column names.
func PreviewTable(rows []lightcurve.Row) string {
	headers := append([]string{""}, lightcurve.Columns[:]...)
	data := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := []string{strconv.Itoa(row.Index)}
		for _, v := range row.Values() {
			cells = append(cells, strconv.FormatFloat(v, 'g', 6, 64))
		}
		data = append(data, cells)
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(_, _ int) lipgloss.Style { return cellStyle }).
		Headers(headers...).
		Rows(data...).
		String()
}
