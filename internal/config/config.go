// Package config defines lcplot configuration and its loading layers.
//
// Conventions:
//   - New returns the defaults; Load layers a YAML file and env vars on top.
//   - Load errors wrap ErrLoadConfig, validation errors wrap ErrInvalidConfig.
package config

import (
	"runtime"
)

// Display modes.
const (
	DisplaySystem = "system"
	DisplayNone   = "none"
)

// Style controls how figures are drawn.
type Style struct {
	// Width and Height are the figure size in pixels.
	Width  int `koanf:"width"`
	Height int `koanf:"height"`

	// LineColor is a hex RGB string without the leading '#'.
	LineColor string  `koanf:"line_color"`
	LineWidth float64 `koanf:"line_width"`

	// GridAlpha is the grid line opacity in [0, 1].
	GridAlpha float64 `koanf:"grid_alpha"`

	TitleFontSize  float64 `koanf:"title_font_size"`
	LabelFontSize  float64 `koanf:"label_font_size"`
	LegendFontSize float64 `koanf:"legend_font_size"`
}

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogJSON switches structured logs to JSON.
	LogJSON bool `koanf:"log_json"`

	// PreviewRows is the number of rows shown in the data preview table.
	PreviewRows int `koanf:"preview_rows"`

	// Display selects the figure display surface: system or none.
	Display string `koanf:"display"`

	// ViewerCommand is the program (with arguments) that opens a PNG file.
	ViewerCommand string `koanf:"viewer_command"`

	// MetricsFile, when set, receives a Prometheus textfile after each run.
	MetricsFile string `koanf:"metrics_file"`

	Style Style `koanf:"style"`
}

// New returns a Config holding the defaults.
func New() *Config {
	return &Config{
		LogLevel:      "info",
		PreviewRows:   5,
		Display:       DisplaySystem,
		ViewerCommand: DefaultViewerCommand(runtime.GOOS),
		Style: Style{
			Width:          1200,
			Height:         800,
			LineColor:      "ff0000",
			LineWidth:      2,
			GridAlpha:      0.3,
			TitleFontSize:  16,
			LabelFontSize:  14,
			LegendFontSize: 12,
		},
	}
}

// DefaultViewerCommand returns the desktop opener for an operating system.
func DefaultViewerCommand(goos string) string {
	switch goos {
	case "darwin":
		return "open"
	case "windows":
		return "cmd /c start"
	default:
		return "xdg-open"
	}
}
