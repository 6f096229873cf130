package config

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Environment variable names.
const (
	EnvPrefix     = "LCPLOT_"
	EnvConfigFile = "LCPLOT_CONFIG"
)

var hexColor = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if LCPLOT_CONFIG is set
//  3. env (prefix LCPLOT_, "__" separates nested keys: LCPLOT_STYLE__WIDTH)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
		}
	}

	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch c.Display {
	case DisplaySystem, DisplayNone:
	default:
		return fmt.Errorf("%w: display must be %q or %q, got %q", ErrInvalidConfig, DisplaySystem, DisplayNone, c.Display)
	}
	if c.Display == DisplaySystem && strings.TrimSpace(c.ViewerCommand) == "" {
		return fmt.Errorf("%w: viewer_command must not be empty", ErrInvalidConfig)
	}
	if c.PreviewRows < 0 {
		return fmt.Errorf("%w: preview_rows must not be negative", ErrInvalidConfig)
	}
	if c.Style.Width <= 0 || c.Style.Height <= 0 {
		return fmt.Errorf("%w: style width and height must be positive", ErrInvalidConfig)
	}
	if c.Style.LineWidth <= 0 {
		return fmt.Errorf("%w: style.line_width must be positive", ErrInvalidConfig)
	}
	if c.Style.GridAlpha < 0 || c.Style.GridAlpha > 1 {
		return fmt.Errorf("%w: style.grid_alpha must be within [0, 1]", ErrInvalidConfig)
	}
	if !hexColor.MatchString(strings.TrimPrefix(c.Style.LineColor, "#")) {
		return fmt.Errorf("%w: style.line_color %q is not a hex RGB color", ErrInvalidConfig, c.Style.LineColor)
	}
	return nil
}
