package engine

import (
	"time"

	"github.com/danieljhkim/hookbuild/internal/planner"
)

// Status is the outcome of a single build entry.
type Status string

const (
	// StatusBuilt means the source existed and its artifact was written.
	StatusBuilt Status = "built"

	// StatusSkipped means the source was missing and the entry was skipped.
	StatusSkipped Status = "skipped"

	// StatusFailed means the source existed but producing the artifact failed.
	StatusFailed Status = "failed"
)

// EntryOutcome records what happened to one planned operation.
type EntryOutcome struct {
	// Name is the hook file name
	Name string `json:"name"`

	// Type is the operation type ("bundle" or "copy")
	Type string `json:"type"`

	// Status is built, skipped or failed
	Status Status `json:"status"`

	// Source is the hook source path
	Source string `json:"source"`

	// Output is the artifact path (set even when nothing was written)
	Output string `json:"output"`

	// Bytes is the artifact size
	Bytes int64 `json:"bytes,omitempty"`

	// Checksum is the "sha256:<hex>" digest of the artifact
	Checksum string `json:"checksum,omitempty"`

	// ExternalImports lists imports a bundle leaves to the runtime
	ExternalImports []string `json:"external_imports,omitempty"`

	// Warnings holds the non-fatal problems reported for the entry
	Warnings []string `json:"warnings,omitempty"`

	// Duration is how long the entry took
	Duration time.Duration `json:"duration"`

	// Error is the failure message for failed entries
	Error string `json:"error,omitempty"`
}

// BuildReport represents the result of a build.
type BuildReport struct {
	// StartedAt is when the build started
	StartedAt time.Time `json:"started_at"`

	// Duration is the total build time
	Duration time.Duration `json:"duration"`

	// Dist is the artifact directory
	Dist string `json:"dist"`

	// DryRun is true when nothing was executed
	DryRun bool `json:"dry_run"`

	// Plan is the generated plan
	Plan *planner.BuildPlan `json:"plan"`

	// Outcomes holds one entry per executed operation, in execution order
	Outcomes []EntryOutcome `json:"outcomes"`
}

// Count returns the number of outcomes with the given status.
func (r *BuildReport) Count(status Status) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}

// Outcome returns the outcome for a hook name, if it was executed.
func (r *BuildReport) Outcome(name string) (EntryOutcome, bool) {
	for _, o := range r.Outcomes {
		if o.Name == name {
			return o, true
		}
	}
	return EntryOutcome{}, false
}

func newOutcome(op planner.Operation) EntryOutcome {
	return EntryOutcome{
		Name:   op.Name,
		Type:   op.Type,
		Source: op.SourcePath,
		Output: op.DestPath,
	}
}
