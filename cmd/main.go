package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/svasyly/astronomy-tools-public/internal/adapters/display"
	"github.com/svasyly/astronomy-tools-public/internal/adapters/render"
	"github.com/svasyly/astronomy-tools-public/internal/app"
	"github.com/svasyly/astronomy-tools-public/internal/config"
	"github.com/svasyly/astronomy-tools-public/pkg/logger"
	"github.com/svasyly/astronomy-tools-public/pkg/metrics"
)

func main() {
	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var (
		index int
		name  string
	)

	cmd := &cobra.Command{
		Use:   "lcplot DATA_DIR",
		Short: "Plot bolometric light curves",
		Long: `Plot bolometric light curves found in DATA_DIR.

Files ending in .txt, .dat, .csv or .lbol are listed in sorted order. Each
selected file is parsed (first line skipped, five whitespace separated
columns: time L_ubvri L_bol XEUV<325 IR>890), plotted as 10^L_ubvri on a
logarithmic axis and summarized.

Configuration is read from the YAML file named by LCPLOT_CONFIG and from
LCPLOT_* environment variables (for example LCPLOT_DISPLAY=none).`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sel := app.All()
			if cmd.Flags().Changed("index") {
				sel.Index = &index
			}
			if cmd.Flags().Changed("name") {
				sel.Name = &name
			}
			return run(cmd.Context(), out, cmd.ErrOrStderr(), args[0], sel)
		},
	}

	cmd.Flags().IntVarP(&index, "index", "i", 0, "Plot only the file at this zero-based position in the listing")
	cmd.Flags().StringVarP(&name, "name", "n", "", "Plot only this file inside DATA_DIR (takes precedence over --index)")
	return cmd
}

func run(ctx context.Context, out, logOut io.Writer, dataDir string, sel app.Selection) error {
	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(logger.WithWriter(logOut), logger.WithJSON(cfg.LogJSON)); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	log := logger.Get()

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	viewer, err := newViewer(cfg, log)
	if err != nil {
		return err
	}

	plotter := app.New(
		app.WithLogger(log),
		app.WithOutput(out),
		app.WithViewer(viewer),
		app.WithRenderer(render.New(render.WithStyle(render.FromConfig(cfg.Style)))),
		app.WithPreviewRows(cfg.PreviewRows),
	)

	_, plotErr := plotter.Plot(ctx, dataDir, sel)

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			log.Warn(ctx, "metrics export failed", logger.String("path", cfg.MetricsFile), logger.Error(err))
		}
	}
	return plotErr
}

func newViewer(cfg *config.Config, log logger.Logger) (display.Viewer, error) {
	if cfg.Display == config.DisplayNone {
		return display.NopViewer{}, nil
	}
	v, err := display.NewSystemViewer(cfg.ViewerCommand, display.WithLogger(log.Named("display")))
	if err != nil {
		return nil, fmt.Errorf("failed to create viewer: %w", err)
	}
	return v, nil
}
