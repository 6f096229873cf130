package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoggerInit(t *testing.T) {
	Convey("Given the global logger", t, func() {
		Convey("When it is initialized with defaults", func() {
			So(Init(), ShouldBeNil)

			Convey("Then Get returns a usable logger", func() {
				So(Get(), ShouldNotBeNil)
				So(Sync(), ShouldBeNil)
			})
		})
	})
}

func TestLoggerWritesToConfiguredWriter(t *testing.T) {
	Convey("Given a logger writing text to a buffer", t, func() {
		var buf bytes.Buffer
		So(Init(WithWriter(&buf)), ShouldBeNil)
		ctx := context.Background()

		Convey("When an info record is logged with fields", func() {
			Get().Info(ctx, "parsed file", String("file", "a.lbol"), Int("rows", 2), Duration("took", time.Millisecond))

			Convey("Then the buffer holds the message and fields", func() {
				out := buf.String()
				So(out, ShouldContainSubstring, "parsed file")
				So(out, ShouldContainSubstring, "file=a.lbol")
				So(out, ShouldContainSubstring, "rows=2")
				So(out, ShouldContainSubstring, "took=1ms")
				So(out, ShouldContainSubstring, "source=")
			})
		})

		Convey("When the level is raised to warn", func() {
			So(SetLevelString("warn"), ShouldBeNil)
			Get().Info(ctx, "hidden")
			Get().Warn(ctx, "shown")

			Convey("Then only the warning is written", func() {
				So(buf.String(), ShouldNotContainSubstring, "hidden")
				So(buf.String(), ShouldContainSubstring, "shown")
			})
		})
	})
}

func TestLoggerJSON(t *testing.T) {
	Convey("Given a JSON logger", t, func() {
		var buf bytes.Buffer
		So(Init(WithWriter(&buf), WithJSON(true)), ShouldBeNil)

		Convey("When a named logger writes a record", func() {
			Named("plotter").Error(context.Background(), "render failed", Bool("fatal", false))

			Convey("Then the record is valid JSON with the component", func() {
				var rec map[string]interface{}
				So(json.Unmarshal(buf.Bytes(), &rec), ShouldBeNil)
				So(rec["msg"], ShouldEqual, "render failed")
				So(rec["component"], ShouldEqual, "plotter")
				So(rec["fatal"], ShouldEqual, false)
			})
		})
	})
}

func TestSetLevelString(t *testing.T) {
	Convey("Given level strings", t, func() {
		So(SetLevelString("debug"), ShouldBeNil)
		So(SetLevelString("INFO"), ShouldBeNil)
		So(SetLevelString(" warning "), ShouldBeNil)
		So(SetLevelString("error"), ShouldBeNil)
		So(SetLevelString(""), ShouldBeNil)
		So(SetLevelString("verbose"), ShouldNotBeNil)
	})
}
