// Package engine provides the core build logic for hookbuild.
//
// The engine sits between the CLI and the lower-level packages. It turns the
// hook lists into a plan, prepares the dist directory, and executes the plan
// one operation at a time: bundle operations through the bundler, copy
// operations through the filesystem.
//
// Key components:
//   - Engine: Main orchestrator that coordinates all operations
//   - Build: Runs a full build and returns a BuildReport
//   - Reporter: Receives progress as each entry starts and finishes
package engine

import (
	"github.com/danieljhkim/hookbuild/internal/bundler"
	"github.com/danieljhkim/hookbuild/internal/clock"
	"github.com/danieljhkim/hookbuild/internal/fsops"
	"github.com/danieljhkim/hookbuild/internal/hash"
)

// Engine orchestrates all hookbuild operations.
// It is the main API surface called by the CLI.
type Engine struct {
	fs       fsops.FS
	bundler  bundler.Bundler
	hasher   hash.Hasher
	clock    clock.Clock
	reporter Reporter
}

// New creates a new Engine with the given dependencies.
// A nil reporter discards progress.
func New(
	fs fsops.FS,
	b bundler.Bundler,
	hasher hash.Hasher,
	clk clock.Clock,
	reporter Reporter,
) *Engine {
	if reporter == nil {
		reporter = NopReporter{}
	}
	return &Engine{
		fs:       fs,
		bundler:  b,
		hasher:   hasher,
		clock:    clk,
		reporter: reporter,
	}
}
