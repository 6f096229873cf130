// Package display hands rendered figures to something that shows them.
package display

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/svasyly/astronomy-tools-public/internal/adapters/render"
	"github.com/svasyly/astronomy-tools-public/pkg/logger"
)

// Viewer shows one figure. Show blocks until the viewer returns.
type Viewer interface {
	Show(ctx context.Context, img render.Image) error
}

// NopViewer discards figures.
type NopViewer struct{}

// Show implements Viewer.
func (NopViewer) Show(context.Context, render.Image) error { return nil }

// SystemViewer writes the figure to a PNG file and runs an opener command
// with the file path as its last argument.
//
// Openers such as xdg-open return before the image is closed, so the file is
// left in place.
type SystemViewer struct {
	command []string
	dir     string
	logger  logger.Logger
}

// NewSystemViewer creates a viewer for command, split on whitespace.
func NewSystemViewer(command string, opts ...Option) (*SystemViewer, error) {
	args := strings.Fields(command)
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: empty viewer command", ErrDisplay)
	}

	v := &SystemViewer{
		command: args,
		dir:     os.TempDir(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// Show implements Viewer.
func (v *SystemViewer) Show(ctx context.Context, img render.Image) error {
	if len(img.PNG) == 0 {
		return fmt.Errorf("%w: %s: empty image", ErrDisplay, img.Title)
	}

	path := filepath.Join(v.dir, "lcplot-"+uuid.NewString()+".png")
	if err := os.WriteFile(path, img.PNG, 0o600); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrDisplay, path, err)
	}

	args := append(append([]string{}, v.command[1:]...), path)
	cmd := exec.CommandContext(ctx, v.command[0], args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%w: %s exited with status %d: %s", ErrDisplay, v.command[0], exitErr.ExitCode(), strings.TrimSpace(string(out)))
		}
		return fmt.Errorf("%w: %s: %w", ErrDisplay, v.command[0], err)
	}

	if v.logger != nil {
		v.logger.Debug(ctx, "figure handed to viewer",
			logger.String("title", img.Title),
			logger.String("path", path),
			logger.String("command", v.command[0]),
		)
	}
	return nil
}

// Dir reports where figures are written.
func (v *SystemViewer) Dir() string { return v.dir }
