package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/smartystreets/goconvey/convey"
	"github.com/svasyly/astronomy-tools-public/internal/config"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()
		clearConfigEnvVars(t)

		convey.Convey("When loading config with defaults only", func() {
			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldResemble, config.New())
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			t.Setenv("LCPLOT_LOG_LEVEL", "debug")
			t.Setenv("LCPLOT_PREVIEW_ROWS", "3")
			t.Setenv("LCPLOT_DISPLAY", "none")
			t.Setenv("LCPLOT_STYLE__WIDTH", "640")
			t.Setenv("LCPLOT_STYLE__GRID_ALPHA", "0.5")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.PreviewRows, convey.ShouldEqual, 3)
				convey.So(cfg.Display, convey.ShouldEqual, config.DisplayNone)
				convey.So(cfg.Style.Width, convey.ShouldEqual, 640)
				convey.So(cfg.Style.GridAlpha, convey.ShouldEqual, 0.5)
				convey.So(cfg.Style.Height, convey.ShouldEqual, 800)
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			path := writeConfigFile(t, `
log_level: warn
preview_rows: 10
metrics_file: /tmp/lcplot.prom
style:
  width: 1000
  line_color: "0000ff"
`)
			t.Setenv("LCPLOT_CONFIG", path)

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "warn")
				convey.So(cfg.PreviewRows, convey.ShouldEqual, 10)
				convey.So(cfg.MetricsFile, convey.ShouldEqual, "/tmp/lcplot.prom")
				convey.So(cfg.Style.Width, convey.ShouldEqual, 1000)
				convey.So(cfg.Style.LineColor, convey.ShouldEqual, "0000ff")
				convey.So(cfg.Style.Height, convey.ShouldEqual, 800)
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			path := writeConfigFile(t, `
preview_rows: 10
style:
  width: 1000
`)
			t.Setenv("LCPLOT_CONFIG", path)
			t.Setenv("LCPLOT_STYLE__WIDTH", "700")

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.PreviewRows, convey.ShouldEqual, 10)
				convey.So(cfg.Style.Width, convey.ShouldEqual, 700)
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			t.Setenv("LCPLOT_CONFIG", writeConfigFile(t, `invalid: yaml: content: [`))

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			t.Setenv("LCPLOT_CONFIG", "/non/existent/file.yaml")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the layered values are invalid", func() {
			t.Setenv("LCPLOT_DISPLAY", "hologram")

			cfg, err := config.Load(ctx)

			convey.Convey("Then validation rejects them", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})
	})
}

// clearConfigEnvVars blanks out LCPLOT_ variables inherited from the environment.
func clearConfigEnvVars(t *testing.T) {
	t.Helper()
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, config.EnvPrefix) {
			t.Setenv(key, "")
			_ = os.Unsetenv(key)
		}
	}
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lcplot.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
