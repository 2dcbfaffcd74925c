package planner

import (
	"github.com/danieljhkim/hookbuild/internal/config"
	"github.com/danieljhkim/hookbuild/internal/fsops"
)

// PlanBuild generates a deterministic plan for the given hook lists.
// Bundles come first, then copies, each in list order. Conflicting names are
// recorded on the plan and left out of its operations.
func PlanBuild(bundle, copyList []string, paths *config.Paths, fs fsops.FS) *BuildPlan {
	plan := NewBuildPlan()
	checker := NewConflictChecker(fs)

	add := func(names []string, opType string) {
		for _, name := range names {
			if conflict := checker.CheckName(name, opType); conflict != nil {
				plan.AddConflict(*conflict)
				continue
			}
			plan.AddOperation(Operation{
				Type:       opType,
				Name:       name,
				SourcePath: paths.Source(name),
				DestPath:   paths.Output(name),
			})
		}
	}

	add(bundle, OpBundle)
	add(copyList, OpCopy)

	return plan
}
