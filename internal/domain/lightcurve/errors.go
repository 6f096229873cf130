package lightcurve

import (
	"errors"
	"fmt"
)

// Sentinel kinds for parse failures.
var (
	ErrRead       = errors.New("read failed")
	ErrFieldCount = errors.New("wrong number of fields")
	ErrNumber     = errors.New("invalid number")
	ErrNoRows     = errors.New("no data rows")
)

// ParseError locates a parse failure. Line is 1-based and zero when the
// failure is not tied to a line.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
