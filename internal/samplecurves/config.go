package samplecurves

import (
	"fmt"
	"strings"
)

// Config holds configuration for a sample data run.
type Config struct {
	OutputDir string // Directory that receives the files
	Count     int    // Number of files to write
	Points    int    // Data rows per file
	Extension string // One of txt, dat, csv, lbol
	Seed      int64  // Seed for curve shapes, noise and file names
	Malformed int    // Number of leading files given a short row
}

// DefaultConfig returns a small, valid run configuration.
func DefaultConfig() Config {
	return Config{
		OutputDir: "sample-curves",
		Count:     defaultCount,
		Points:    defaultPoints,
		Extension: "lbol",
		Seed:      1,
	}
}

// Validate checks the configuration and normalizes the extension.
func (c *Config) Validate() error {
	c.Extension = strings.TrimPrefix(strings.ToLower(c.Extension), ".")
	switch {
	case c.OutputDir == "":
		return fmt.Errorf("%w: output directory is required", ErrInvalidConfig)
	case c.Count <= 0:
		return fmt.Errorf("%w: count must be positive, got %d", ErrInvalidConfig, c.Count)
	case c.Points < minPoints:
		return fmt.Errorf("%w: points must be at least %d, got %d", ErrInvalidConfig, minPoints, c.Points)
	case c.Malformed < 0 || c.Malformed > c.Count:
		return fmt.Errorf("%w: malformed must be between 0 and %d, got %d", ErrInvalidConfig, c.Count, c.Malformed)
	}
	for _, ext := range Extensions {
		if c.Extension == ext {
			return nil
		}
	}
	return fmt.Errorf("%w: unsupported extension %q", ErrInvalidConfig, c.Extension)
}
