package display

import "errors"

// Sentinel kinds for display errors.
var (
	ErrDisplay = errors.New("display failed")
)
