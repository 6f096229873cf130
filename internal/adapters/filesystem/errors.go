package filesystem

import "errors"

// Sentinel kinds for discovery errors.
var (
	ErrDirectory = errors.New("data directory unavailable")
)
