package engine

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/danieljhkim/hookbuild/internal/bundler"
	"github.com/danieljhkim/hookbuild/internal/planner"
)

// Plan generates the build plan for req without touching the filesystem.
func (e *Engine) Plan(req *BuildRequest) (*planner.BuildPlan, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	return planner.PlanBuild(req.Bundle, req.Copy, req.Paths, e.fs), nil
}

// Algorithm steps:
// 1. Plan the build and reject conflicting hook lists
// 2. Prepare the dist directory (if not DryRun)
// 3. Run every bundle operation, then every copy operation, in order
// 4. Return the report
//
// A missing source skips its entry. Any other failure stops the build; the
// returned report still holds the outcomes up to and including the failure
// and artifacts already written are left in place.
func (e *Engine) Build(ctx context.Context, req *BuildRequest) (*BuildReport, error) {
	plan, err := e.Plan(req)
	if err != nil {
		return nil, err
	}

	start := e.clock.Now()
	report := &BuildReport{
		StartedAt: start,
		Dist:      req.Paths.Dist,
		DryRun:    req.DryRun,
		Plan:      plan,
		Outcomes:  []EntryOutcome{},
	}
	finish := func() {
		report.Duration = e.clock.Since(start)
	}

	if plan.HasConflicts() {
		finish()
		return report, fmt.Errorf("%w: %d conflicts detected", ErrConflict, len(plan.Conflicts))
	}

	if req.DryRun {
		finish()
		return report, nil
	}

	if err := e.prepareDist(req.Paths.Dist); err != nil {
		finish()
		return report, err
	}

	for _, op := range plan.Operations {
		if err := ctx.Err(); err != nil {
			finish()
			return report, err
		}

		outcome, err := e.executeOperation(ctx, op)
		report.Outcomes = append(report.Outcomes, outcome)
		if err != nil {
			finish()
			return report, fmt.Errorf("failed to %s %s: %w", op.Type, op.Name, err)
		}
	}

	finish()
	return report, nil
}

// prepareDist makes sure the dist directory exists.
func (e *Engine) prepareDist(dist string) error {
	if err := e.fs.MkdirAll(dist, 0755); err != nil {
		return fmt.Errorf("failed to create dist directory %s: %w", dist, err)
	}
	return nil
}

// executeOperation executes a single operation.
func (e *Engine) executeOperation(ctx context.Context, op planner.Operation) (EntryOutcome, error) {
	outcome := newOutcome(op)
	start := e.clock.Now()

	exists, err := e.fs.Exists(op.SourcePath)
	if err != nil {
		outcome.Status = StatusFailed
		outcome.Error = err.Error()
		return outcome, fmt.Errorf("failed to check source: %w", err)
	}
	if !exists {
		outcome.Status = StatusSkipped
		outcome.Warnings = append(outcome.Warnings, "source not found, skipping")
		e.reporter.Skipped(op)
		return outcome, nil
	}

	e.reporter.Started(op)

	switch op.Type {
	case planner.OpBundle:
		err = e.executeBundle(ctx, op, &outcome)
	case planner.OpCopy:
		err = e.executeCopy(op, &outcome)
	default:
		err = fmt.Errorf("unknown operation type: %s", op.Type)
	}
	outcome.Duration = e.clock.Since(start)

	if err != nil {
		outcome.Status = StatusFailed
		outcome.Error = err.Error()
		return outcome, err
	}

	outcome.Status = StatusBuilt
	e.reporter.Finished(outcome)
	return outcome, nil
}

// executeBundle bundles a hook and writes the artifact.
func (e *Engine) executeBundle(ctx context.Context, op planner.Operation, outcome *EntryOutcome) error {
	result, err := e.bundler.Bundle(ctx, op.SourcePath, op.DestPath)
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		e.warn(op, outcome, w)
	}
	for _, imp := range bundler.UnresolvedImports(result.ExternalImports) {
		e.warn(op, outcome, fmt.Sprintf("import %q is not bundled and is not a Node.js builtin", imp))
	}

	if err := e.fs.AtomicWrite(op.DestPath, result.Contents, artifactMode(result.Contents)); err != nil {
		return fmt.Errorf("failed to write bundle: %w", err)
	}

	outcome.Bytes = int64(len(result.Contents))
	outcome.Checksum = e.hasher.HashBytes(result.Contents)
	outcome.ExternalImports = result.ExternalImports
	return nil
}

// warn reports msg and keeps it on the outcome for machine-readable reports.
func (e *Engine) warn(op planner.Operation, outcome *EntryOutcome, msg string) {
	outcome.Warnings = append(outcome.Warnings, strings.TrimRight(msg, "\n"))
	e.reporter.Warning(op, msg)
}

// executeCopy copies a hook verbatim.
func (e *Engine) executeCopy(op planner.Operation, outcome *EntryOutcome) error {
	if err := e.fs.CopyFile(op.SourcePath, op.DestPath); err != nil {
		return fmt.Errorf("failed to copy: %w", err)
	}

	info, err := e.fs.Stat(op.DestPath)
	if err != nil {
		return fmt.Errorf("failed to stat copy: %w", err)
	}
	checksum, err := e.hasher.HashFile(op.DestPath)
	if err != nil {
		return fmt.Errorf("failed to hash copy: %w", err)
	}

	outcome.Bytes = info.Size()
	outcome.Checksum = checksum
	return nil
}

// artifactMode makes bundles that start with a shebang executable.
func artifactMode(contents []byte) os.FileMode {
	if bytes.HasPrefix(contents, []byte("#!")) {
		return 0755
	}
	return 0644
}
