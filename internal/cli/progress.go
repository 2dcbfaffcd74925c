package cli

import (
	"fmt"
	"strings"

	"github.com/danieljhkim/hookbuild/internal/engine"
	"github.com/danieljhkim/hookbuild/internal/planner"
)

// progressReporter prints build progress as it happens.
type progressReporter struct{}

func (progressReporter) Started(op planner.Operation) {
	switch op.Type {
	case planner.OpBundle:
		PrintInfo(fmt.Sprintf("Bundling %s...", op.Name))
	default:
		PrintInfo(fmt.Sprintf("Copying %s...", op.Name))
	}
}

func (progressReporter) Skipped(op planner.Operation) {
	warningReporter{}.Skipped(op)
}

func (progressReporter) Finished(outcome engine.EntryOutcome) {
	PrintDetail(outcome.Output)
}

func (progressReporter) Warning(op planner.Operation, msg string) {
	warningReporter{}.Warning(op, msg)
}

// warningReporter prints only warnings. It keeps stdout free for --json
// while missing hooks and bundler warnings still reach stderr.
type warningReporter struct {
	engine.NopReporter
}

func (warningReporter) Skipped(op planner.Operation) {
	PrintWarning(fmt.Sprintf("Warning: %s not found, skipping", op.Name))
}

func (warningReporter) Warning(op planner.Operation, msg string) {
	PrintWarning(fmt.Sprintf("%s: %s", op.Name, strings.TrimRight(msg, "\n")))
}
