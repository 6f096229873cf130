package lightcurve_test

import (
	"math"
	"testing"

	"github.com/smartystreets/goconvey/convey"
	"github.com/svasyly/astronomy-tools-public/internal/domain/lightcurve"
)

func record(rows ...lightcurve.Row) lightcurve.Record {
	for i := range rows {
		rows[i].Index = i
	}
	return lightcurve.Record{Path: "mem", Rows: rows}
}

func TestSortByTime(t *testing.T) {
	convey.Convey("Given rows out of time order", t, func() {
		rec := record(
			lightcurve.Row{Time: 3, LUBVRI: 1},
			lightcurve.Row{Time: 1, LUBVRI: 2},
			lightcurve.Row{Time: 2, LUBVRI: 3},
			lightcurve.Row{Time: 1, LUBVRI: 4},
		)

		convey.Convey("When sorted", func() {
			rec.SortByTime()

			convey.Convey("Then time ascends and ties keep file order", func() {
				convey.So(rec.Times(), convey.ShouldResemble, []float64{1, 1, 2, 3})
				convey.So(rec.Rows[0].Index, convey.ShouldEqual, 1)
				convey.So(rec.Rows[1].Index, convey.ShouldEqual, 3)
			})
		})
	})
}

func TestSummarize(t *testing.T) {
	convey.Convey("Given the two-row scenario", t, func() {
		rec := record(
			lightcurve.Row{Time: 0, LUBVRI: 1, LBol: 1, XEUV: 0.5, IR: 0.5},
			lightcurve.Row{Time: 1, LUBVRI: 2, LBol: 2, XEUV: 0.5, IR: 0.5},
		)

		convey.Convey("When summarized", func() {
			s := rec.Summarize()

			convey.Convey("Then linear luminosity is 10^L_ubvri and the peak is the last row", func() {
				convey.So(s.Linear[0], convey.ShouldAlmostEqual, 10.0, 1e-9)
				convey.So(s.Linear[1], convey.ShouldAlmostEqual, 100.0, 1e-9)
				convey.So(s.HasPeak(), convey.ShouldBeTrue)
				convey.So(s.PeakIndex, convey.ShouldEqual, 1)
				convey.So(s.PeakTime, convey.ShouldEqual, 1.0)
				convey.So(s.PeakLog, convey.ShouldEqual, 2.0)
				convey.So(s.PeakLinear, convey.ShouldAlmostEqual, 100.0, 1e-9)
				convey.So(s.TimeMin, convey.ShouldEqual, 0.0)
				convey.So(s.TimeMax, convey.ShouldEqual, 1.0)
			})
		})
	})

	convey.Convey("Given a tie on the maximum", t, func() {
		rec := record(
			lightcurve.Row{Time: 0, LUBVRI: 42},
			lightcurve.Row{Time: 5, LUBVRI: 42.5},
			lightcurve.Row{Time: 9, LUBVRI: 42.5},
		)

		convey.Convey("Then the first occurrence wins", func() {
			s := rec.Summarize()
			convey.So(s.PeakIndex, convey.ShouldEqual, 1)
			convey.So(s.PeakTime, convey.ShouldEqual, 5)
		})
	})

	convey.Convey("Given typical luminosities", t, func() {
		logs := []float64{41.2, 42.37, 42.1, 40.95}
		rows := make([]lightcurve.Row, len(logs))
		for i, l := range logs {
			rows[i] = lightcurve.Row{Time: float64(i) * 10, LUBVRI: l}
		}
		s := record(rows...).Summarize()

		convey.Convey("Then every linear value round-trips through log10", func() {
			for i, l := range logs {
				convey.So(math.Log10(s.Linear[i]), convey.ShouldAlmostEqual, l, 1e-12)
			}
			convey.So(s.PeakTime, convey.ShouldEqual, 10)
		})
	})

	convey.Convey("Given NaN luminosities", t, func() {
		rec := record(
			lightcurve.Row{Time: 0, LUBVRI: math.NaN()},
			lightcurve.Row{Time: 1, LUBVRI: 3},
		)

		convey.Convey("Then NaN never wins the peak", func() {
			s := rec.Summarize()
			convey.So(s.PeakIndex, convey.ShouldEqual, 1)
		})
	})

	convey.Convey("Given only NaN luminosities", t, func() {
		s := record(lightcurve.Row{Time: 0, LUBVRI: math.NaN()}).Summarize()

		convey.Convey("Then there is no peak", func() {
			convey.So(s.HasPeak(), convey.ShouldBeFalse)
			convey.So(math.IsNaN(s.PeakTime), convey.ShouldBeTrue)
			convey.So(s.TimeMin, convey.ShouldEqual, 0)
		})
	})
}

func TestHead(t *testing.T) {
	convey.Convey("Given three rows", t, func() {
		rec := record(lightcurve.Row{Time: 0}, lightcurve.Row{Time: 1}, lightcurve.Row{Time: 2})

		convey.So(len(rec.Head(2)), convey.ShouldEqual, 2)
		convey.So(len(rec.Head(10)), convey.ShouldEqual, 3)
		convey.So(len(rec.Head(-1)), convey.ShouldEqual, 0)
		convey.So(rec.Rows[2].Values(), convey.ShouldResemble, [lightcurve.NumColumns]float64{2, 0, 0, 0, 0})
	})
}
