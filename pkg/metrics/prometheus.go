// Package metrics provides Prometheus metrics for lcplot runs.
//
// A plotting run is short-lived, so nothing is scraped. The registry can be
// exported once per run to a node_exporter textfile via WriteTextfile.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Stage labels used by RecordFileFailure.
const (
	StageParse   = "parse"
	StageRender  = "render"
	StageDisplay = "display"
)

// Manager owns the metric collectors for one registry.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	filesDiscovered prometheus.Counter
	filesSelected   prometheus.Counter
	filesProcessed  prometheus.Counter
	fileFailures    *prometheus.CounterVec
	rowsParsed      prometheus.Counter

	parseDuration  prometheus.Histogram
	renderDuration prometheus.Histogram

	lastRunUnix prometheus.Gauge
}

var globalManager *Manager //nolint:gochecknoglobals // process-wide metrics singleton

var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // keeps Go runtime collectors out

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "lcplot",
		subsystem:        "plotter",
		histogramBuckets: []float64{0.5, 1, 2.5, 5, 10, 25, 50, 100, 250, 500, 1000},
		registry:         prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.filesDiscovered = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "files_discovered_total",
		Help:      "Total number of light curve files found in scanned directories",
	})

	m.filesSelected = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "files_selected_total",
		Help:      "Total number of files selected for plotting",
	})

	m.filesProcessed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "files_processed_total",
		Help:      "Total number of files parsed, plotted and summarized",
	})

	m.fileFailures = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "file_failures_total",
			Help:      "Total number of files skipped because of an error, by stage",
		},
		[]string{"stage"},
	)

	m.rowsParsed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rows_parsed_total",
		Help:      "Total number of data rows parsed",
	})

	m.parseDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "parse_duration_milliseconds",
		Help:      "Time spent reading and parsing one file",
		Buckets:   m.histogramBuckets,
	})

	m.renderDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "render_duration_milliseconds",
		Help:      "Time spent rendering one figure",
		Buckets:   m.histogramBuckets,
	})

	m.lastRunUnix = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "last_run_unix",
		Help:      "Unix timestamp of the last completed plotting run",
	})
}

// Registry returns the registry this manager registers on.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes every metric of the manager's registry to path in the
// Prometheus text exposition format.
func (m *Manager) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrExport, path, err)
	}
	return nil
}

// RecordFilesDiscovered adds n discovered files.
func RecordFilesDiscovered(n int) {
	globalManager.filesDiscovered.Add(float64(n))
}

// RecordFilesSelected adds n selected files.
func RecordFilesSelected(n int) {
	globalManager.filesSelected.Add(float64(n))
}

// RecordFileProcessed increments the processed files counter.
func RecordFileProcessed() {
	globalManager.filesProcessed.Inc()
}

// RecordFileFailure increments the failure counter for a stage.
func RecordFileFailure(stage string) {
	globalManager.fileFailures.WithLabelValues(stage).Inc()
}

// RecordRowsParsed adds n parsed rows.
func RecordRowsParsed(n int) {
	globalManager.rowsParsed.Add(float64(n))
}

// RecordParseDuration observes a parse duration.
func RecordParseDuration(d time.Duration) {
	globalManager.parseDuration.Observe(float64(d) / float64(time.Millisecond))
}

// RecordRenderDuration observes a render duration.
func RecordRenderDuration(d time.Duration) {
	globalManager.renderDuration.Observe(float64(d) / float64(time.Millisecond))
}

// MarkRunCompleted stamps the last run gauge with t.
func MarkRunCompleted(t time.Time) {
	globalManager.lastRunUnix.Set(float64(t.Unix()))
}

// WriteTextfile exports the global registry to path.
func WriteTextfile(path string) error {
	return globalManager.WriteTextfile(path)
}

// GetRegistry returns the custom Prometheus registry used by the global metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
