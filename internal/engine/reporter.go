package engine

import "github.com/danieljhkim/hookbuild/internal/planner"

// Reporter receives build progress. Calls arrive in execution order from the
// goroutine running Build.
type Reporter interface {
	// Started is called before an operation runs.
	Started(op planner.Operation)

	// Skipped is called when an operation's source is missing.
	Skipped(op planner.Operation)

	// Finished is called after an operation's artifact was written.
	Finished(outcome EntryOutcome)

	// Warning reports a non-fatal problem with an operation.
	Warning(op planner.Operation, msg string)
}

// NopReporter discards all progress.
type NopReporter struct{}

func (NopReporter) Started(planner.Operation) {}
func (NopReporter) Skipped(planner.Operation) {}
func (NopReporter) Finished(EntryOutcome) {}
func (NopReporter) Warning(planner.Operation, string) {}
