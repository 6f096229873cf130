package samplecurves

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/svasyly/astronomy-tools-public/internal/domain/lightcurve"
	"github.com/svasyly/astronomy-tools-public/pkg/logger"
)

// Stats summarizes a run.
type Stats struct {
	Files     []string
	Malformed int
	Rows      int
	Duration  time.Duration
}

// Run validates cfg and writes cfg.Count curve files into cfg.OutputDir.
// The first cfg.Malformed files carry a short row.
func Run(ctx context.Context, cfg Config) (Stats, error) {
	start := time.Now()
	var stats Stats

	if err := cfg.Validate(); err != nil {
		return stats, err
	}
	if err := os.MkdirAll(cfg.OutputDir, directoryPermission); err != nil {
		return stats, fmt.Errorf("%w: %w", ErrWrite, err)
	}

	log := logger.Named("samplecurves")
	log.Info(ctx, "writing sample curves",
		logger.String("dir", cfg.OutputDir),
		logger.Int("count", cfg.Count),
		logger.Int("points", cfg.Points),
		logger.Any("seed", cfg.Seed),
	)

	gen := NewGenerator(cfg.Seed)
	for i := 0; i < cfg.Count; i++ {
		if err := ctx.Err(); err != nil {
			return stats, fmt.Errorf("sample run cancelled: %w", err)
		}

		name, err := gen.Name(cfg.Extension)
		if err != nil {
			return stats, fmt.Errorf("%w: %w", ErrWrite, err)
		}
		rows := gen.Rows(gen.Shape(), cfg.Points)
		malformed := i < cfg.Malformed

		path := filepath.Join(cfg.OutputDir, name)
		if err := writeFile(path, rows, malformed); err != nil {
			return stats, err
		}

		stats.Files = append(stats.Files, path)
		stats.Rows += len(rows)
		if malformed {
			stats.Malformed++
		}
		log.Debug(ctx, "curve written", logger.String("file", name), logger.Bool("malformed", malformed))
	}

	stats.Duration = time.Since(start)
	log.Info(ctx, "sample curves written",
		logger.Int("files", len(stats.Files)),
		logger.Int("malformed", stats.Malformed),
		logger.Duration("took", stats.Duration),
	)
	return stats, nil
}

func writeFile(path string, rows []lightcurve.Row, malformed bool) (err error) {
	fh, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePermission)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	defer func() {
		if cerr := fh.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrWrite, cerr)
		}
	}()
	return Write(fh, rows, malformed)
}
