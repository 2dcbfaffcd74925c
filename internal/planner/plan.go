package planner

// BuildPlan represents the ordered work of a single build.
type BuildPlan struct {
	// Operations is the ordered list of operations to execute
	Operations []Operation `json:"operations"`

	// Conflicts is a list of detected conflicts (empty if no conflicts)
	Conflicts []Conflict `json:"conflicts"`
}

// Operation represents producing one artifact.
type Operation struct {
	// Type is the operation type: "bundle" or "copy"
	Type string `json:"type"`

	// Name is the hook file name, shared by source and artifact
	Name string `json:"name"`

	// SourcePath is the hook source (absolute)
	SourcePath string `json:"source"`

	// DestPath is the artifact path in the dist directory (absolute)
	DestPath string `json:"dest"`
}

// Conflict represents a problem with the hook lists detected during planning.
type Conflict struct {
	// Name is the hook name the conflict concerns
	Name string `json:"name"`

	// Reason is a human-readable explanation of the conflict
	Reason string `json:"reason"`
}

// Operation type constants
const (
	OpBundle = "bundle"
	OpCopy   = "copy"
)

// NewBuildPlan creates a new empty BuildPlan.
func NewBuildPlan() *BuildPlan {
	return &BuildPlan{
		Operations: []Operation{},
		Conflicts:  []Conflict{},
	}
}

// HasConflicts returns true if the plan has any conflicts.
func (p *BuildPlan) HasConflicts() bool {
	return len(p.Conflicts) > 0
}

// AddOperation adds an operation to the plan.
func (p *BuildPlan) AddOperation(op Operation) {
	p.Operations = append(p.Operations, op)
}

// AddConflict adds a conflict to the plan.
func (p *BuildPlan) AddConflict(conflict Conflict) {
	p.Conflicts = append(p.Conflicts, conflict)
}

// Count returns the number of operations of the given type.
func (p *BuildPlan) Count(opType string) int {
	n := 0
	for _, op := range p.Operations {
		if op.Type == opType {
			n++
		}
	}
	return n
}
