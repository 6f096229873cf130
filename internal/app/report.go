package app

import (
	"github.com/svasyly/astronomy-tools-public/internal/adapters/filesystem"
	"github.com/svasyly/astronomy-tools-public/internal/domain/lightcurve"
	"github.com/svasyly/astronomy-tools-public/pkg/metrics"
)

// Outcome is how a plotting run ended.
type Outcome int

const (
	// OutcomeProcessed means every selected file was attempted.
	OutcomeProcessed Outcome = iota
	// OutcomeNoFiles means the directory held no recognised files.
	OutcomeNoFiles
	// OutcomeInvalidSelection means the name or index matched nothing.
	OutcomeInvalidSelection
)

func (o Outcome) String() string {
	switch o {
	case OutcomeProcessed:
		return "processed"
	case OutcomeNoFiles:
		return "no_files"
	case OutcomeInvalidSelection:
		return "invalid_selection"
	default:
		return "unknown"
	}
}

// Stage names the step at which a file failed.
type Stage string

const (
	StageNone    Stage = ""
	StageParse   Stage = metrics.StageParse
	StageRender  Stage = metrics.StageRender
	StageDisplay Stage = metrics.StageDisplay
)

// FileResult is the outcome for one selected file. Record and Summary are
// set once parsing succeeded, even if a later stage failed.
type FileResult struct {
	Path    string
	Name    string
	Stage   Stage
	Record  lightcurve.Record
	Summary lightcurve.Summary
	Err     error
}

// OK reports whether the file was fully processed.
func (r FileResult) OK() bool { return r.Err == nil }

// Report describes one plotting run.
type Report struct {
	Dir      string
	Files    filesystem.FileSet
	Selected []string
	Outcome  Outcome
	Results  []FileResult
}

// Processed counts files that went through every stage.
func (r Report) Processed() int {
	n := 0
	for _, res := range r.Results {
		if res.OK() {
			n++
		}
	}
	return n
}

// Failed counts files that stopped at some stage.
func (r Report) Failed() int {
	return len(r.Results) - r.Processed()
}
