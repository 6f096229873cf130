package lightcurve

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const maxLineBytes = 1024 * 1024

// Load reads and parses the file at path. The file is closed before Load
// returns.
func Load(path string) (Record, error) {
	fh, err := os.Open(path)
	if err != nil {
		return Record{}, &ParseError{Path: path, Err: fmt.Errorf("%w: %w", ErrRead, err)}
	}
	defer func() { _ = fh.Close() }()

	return Parse(fh, path)
}

// Parse reads a whitespace-delimited light curve. The first line is a title
// and is always discarded. Every following non-blank line must hold exactly
// NumColumns numeric tokens. Rows come back in file order.
func Parse(r io.Reader, path string) (Record, error) {
	rec := Record{Path: path}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	ln := 0
	for sc.Scan() {
		ln++
		if ln == 1 {
			continue
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row, err := parseRow(fields)
		if err != nil {
			return Record{}, &ParseError{Path: path, Line: ln, Err: err}
		}
		row.Index = len(rec.Rows)
		rec.Rows = append(rec.Rows, row)
	}
	if err := sc.Err(); err != nil {
		return Record{}, &ParseError{Path: path, Line: ln + 1, Err: fmt.Errorf("%w: %w", ErrRead, err)}
	}
	if len(rec.Rows) == 0 {
		return Record{}, &ParseError{Path: path, Err: ErrNoRows}
	}
	return rec, nil
}

func parseRow(fields []string) (Row, error) {
	if len(fields) != NumColumns {
		return Row{}, fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(fields), NumColumns)
	}
	var v [NumColumns]float64
	for i, tok := range fields {
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return Row{}, fmt.Errorf("%w: column %s: %q", ErrNumber, Columns[i], tok)
		}
		v[i] = f
	}
	return Row{Time: v[0], LUBVRI: v[1], LBol: v[2], XEUV: v[3], IR: v[4]}, nil
}
