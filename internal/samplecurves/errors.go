package samplecurves

import "errors"

// Sentinel kinds for sample data errors.
var (
	ErrInvalidConfig = errors.New("invalid sample config")
	ErrWrite         = errors.New("write sample curve")
)
