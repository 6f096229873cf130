// Package app runs light curve plotting over a data directory.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/svasyly/astronomy-tools-public/internal/adapters/console"
	"github.com/svasyly/astronomy-tools-public/internal/adapters/display"
	"github.com/svasyly/astronomy-tools-public/internal/adapters/filesystem"
	"github.com/svasyly/astronomy-tools-public/internal/adapters/render"
	"github.com/svasyly/astronomy-tools-public/internal/domain/lightcurve"
	"github.com/svasyly/astronomy-tools-public/pkg/logger"
	"github.com/svasyly/astronomy-tools-public/pkg/metrics"
)

// Plotter discovers, parses, plots and summarizes light curve files.
type Plotter struct {
	out         io.Writer
	renderer    *render.Renderer
	viewer      display.Viewer
	previewRows int

	logger logger.Logger
}

// Option applies a configuration option to the Plotter.
type Option func(*Plotter)

// WithOutput sets where the report text is written.
func WithOutput(w io.Writer) Option {
	return func(p *Plotter) {
		if w != nil {
			p.out = w
		}
	}
}

// WithRenderer sets the figure renderer.
func WithRenderer(r *render.Renderer) Option {
	return func(p *Plotter) {
		if r != nil {
			p.renderer = r
		}
	}
}

// WithViewer sets where rendered figures are shown.
func WithViewer(v display.Viewer) Option {
	return func(p *Plotter) {
		if v != nil {
			p.viewer = v
		}
	}
}

// WithPreviewRows sets how many leading rows the preview table shows.
func WithPreviewRows(n int) Option {
	return func(p *Plotter) {
		if n >= 0 {
			p.previewRows = n
		}
	}
}

// WithLogger sets a custom logger for the plotter.
func WithLogger(l logger.Logger) Option {
	return func(p *Plotter) {
		if l != nil {
			p.logger = l
		}
	}
}

// New constructs a Plotter. Without options it writes to stdout, renders
// with the default style and discards figures.
func New(opts ...Option) *Plotter {
	p := &Plotter{
		out:         os.Stdout,
		renderer:    render.New(),
		viewer:      display.NopViewer{},
		previewRows: 5,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Plot runs one pass over dataDir. Per-file failures are reported and
// recorded in the Report; only a missing directory or a cancelled context
// is returned as an error.
func (p *Plotter) Plot(ctx context.Context, dataDir string, sel Selection) (Report, error) {
	log := p.log().Named("plotter")
	started := time.Now()
	runID := uuid.NewString()
	report := Report{Dir: dataDir}

	files, err := filesystem.Discover(dataDir)
	if err != nil {
		log.Error(ctx, "discovery failed", logger.String("run", runID), logger.String("dir", dataDir), logger.Error(err))
		return report, fmt.Errorf("plot %s: %w", dataDir, err)
	}
	report.Files = files
	metrics.RecordFilesDiscovered(len(files))

	rep := console.NewReporter(p.out)
	rep.FoundFiles(dataDir, files)
	if len(files) == 0 {
		rep.NoFiles(dataDir)
		report.Outcome = OutcomeNoFiles
		return report, nil
	}

	selected, ok := p.resolve(rep, dataDir, files, sel)
	if !ok {
		log.Warn(ctx, "selection matched nothing", logger.String("run", runID), logger.String("selection", sel.String()))
		report.Outcome = OutcomeInvalidSelection
		return report, nil
	}
	report.Selected = selected
	metrics.RecordFilesSelected(len(selected))

	log.Debug(ctx, "plotting files",
		logger.String("run", runID),
		logger.String("dir", dataDir),
		logger.String("selection", sel.String()),
		logger.Int("selected", len(selected)),
	)

	for _, path := range selected {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("plot %s: %w", dataDir, err)
		}
		res := p.processFile(ctx, rep, path)
		if !res.OK() {
			metrics.RecordFileFailure(string(res.Stage))
			log.Warn(ctx, "file skipped",
				logger.String("run", runID),
				logger.String("file", res.Name),
				logger.String("stage", string(res.Stage)),
				logger.Error(res.Err),
			)
		} else {
			metrics.RecordFileProcessed()
		}
		report.Results = append(report.Results, res)
	}

	report.Outcome = OutcomeProcessed
	metrics.MarkRunCompleted(time.Now())
	log.Info(ctx, "plot run finished",
		logger.String("run", runID),
		logger.Int("processed", report.Processed()),
		logger.Int("failed", report.Failed()),
		logger.Duration("took", time.Since(started)),
	)
	return report, nil
}

func (p *Plotter) resolve(rep *console.Reporter, dataDir string, files filesystem.FileSet, sel Selection) ([]string, bool) {
	switch {
	case sel.Name != nil:
		path, ok := filesystem.Exists(dataDir, *sel.Name)
		if !ok {
			rep.NameNotFound(*sel.Name, dataDir)
			return nil, false
		}
		return []string{path}, true
	case sel.Index != nil:
		i := *sel.Index
		if i < 0 || i >= len(files) {
			rep.InvalidIndex(i, len(files))
			return nil, false
		}
		return []string{files[i]}, true
	default:
		return files, true
	}
}

func (p *Plotter) processFile(ctx context.Context, rep *console.Reporter, path string) FileResult {
	name := filepath.Base(path)
	res := FileResult{Path: path, Name: name}
	rep.Processing(name)

	fail := func(stage Stage, err error) FileResult {
		res.Stage = stage
		res.Err = err
		rep.FileError(name, err)
		return res
	}

	parseStart := time.Now()
	rec, err := lightcurve.Load(path)
	if err != nil {
		return fail(StageParse, err)
	}
	metrics.RecordParseDuration(time.Since(parseStart))
	metrics.RecordRowsParsed(rec.Len())

	rec.SortByTime()
	sum := rec.Summarize()
	res.Record = rec
	res.Summary = sum

	rep.Preview(rec.Head(p.previewRows))

	renderStart := time.Now()
	img, err := p.renderer.Render(render.LightCurveFigure(name, rec, sum))
	if err != nil {
		return fail(StageRender, err)
	}
	metrics.RecordRenderDuration(time.Since(renderStart))

	if err := p.viewer.Show(ctx, img); err != nil {
		return fail(StageDisplay, err)
	}

	rep.Statistics(name, sum)
	return res
}

func (p *Plotter) log() logger.Logger {
	if p.logger == nil {
		return logger.Get()
	}
	return p.logger
}
