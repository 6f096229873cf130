package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			manager := NewManager()

			Convey("Then it registers on its own registry", func() {
				So(manager, ShouldNotBeNil)
				So(manager.Registry(), ShouldNotBeNil)
				So(manager.Registry(), ShouldNotEqual, GetRegistry())
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test"),
				WithSubsystem("unit"),
				WithHistogramBuckets([]float64{1, 10}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then the collectors carry the custom names", func() {
				manager.filesProcessed.Inc()
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				names := map[string]bool{}
				for _, f := range families {
					names[f.GetName()] = true
				}
				So(names["test_unit_files_processed_total"], ShouldBeTrue)
				So(manager.histogramBuckets, ShouldResemble, []float64{1, 10})
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given the global metrics", t, func() {
		Convey("When recording run metrics", func() {
			processedBefore := testutil.ToFloat64(globalManager.filesProcessed)
			parseFailBefore := testutil.ToFloat64(globalManager.fileFailures.WithLabelValues(StageParse))
			rowsBefore := testutil.ToFloat64(globalManager.rowsParsed)

			RecordFilesDiscovered(3)
			RecordFilesSelected(3)
			RecordFileProcessed()
			RecordFileProcessed()
			RecordFileFailure(StageParse)
			RecordRowsParsed(42)
			RecordParseDuration(3 * time.Millisecond)
			RecordRenderDuration(20 * time.Millisecond)
			MarkRunCompleted(time.Unix(1700000000, 0))

			Convey("Then the counters move by the recorded amounts", func() {
				So(testutil.ToFloat64(globalManager.filesProcessed)-processedBefore, ShouldEqual, 2)
				So(testutil.ToFloat64(globalManager.fileFailures.WithLabelValues(StageParse))-parseFailBefore, ShouldEqual, 1)
				So(testutil.ToFloat64(globalManager.rowsParsed)-rowsBefore, ShouldEqual, 42)
				So(testutil.ToFloat64(globalManager.lastRunUnix), ShouldEqual, 1700000000)
			})
		})
	})
}

func TestWriteTextfile(t *testing.T) {
	Convey("Given the global registry", t, func() {
		RecordFileProcessed()

		Convey("When exporting to a textfile", func() {
			path := filepath.Join(t.TempDir(), "lcplot.prom")
			err := WriteTextfile(path)

			Convey("Then the file holds the exposition text", func() {
				So(err, ShouldBeNil)
				data, readErr := os.ReadFile(path)
				So(readErr, ShouldBeNil)
				So(string(data), ShouldContainSubstring, "lcplot_plotter_files_processed_total")
			})
		})

		Convey("When the target directory does not exist", func() {
			err := WriteTextfile(filepath.Join(t.TempDir(), "missing", "lcplot.prom"))

			Convey("Then an export error is returned", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, ErrExport), ShouldBeTrue)
			})
		})
	})
}
