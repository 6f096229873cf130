package display

import "github.com/svasyly/astronomy-tools-public/pkg/logger"

// Option configures a SystemViewer.
type Option func(*SystemViewer)

// WithTempDir writes figures under dir instead of os.TempDir().
func WithTempDir(dir string) Option {
	return func(v *SystemViewer) {
		v.dir = dir
	}
}

// WithLogger sets the logger used for viewer diagnostics.
func WithLogger(l logger.Logger) Option {
	return func(v *SystemViewer) {
		v.logger = l
	}
}
