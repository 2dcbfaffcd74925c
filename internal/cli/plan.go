package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/hookbuild/internal/engine"
	"github.com/danieljhkim/hookbuild/internal/planner"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the build plan without running it",
	Long: `Resolve the manifest into the ordered list of operations a build would run,
together with the bundler options. Nothing is written.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProject()
		if err != nil {
			return err
		}

		plan, err := newEngine(p, nil).Plan(p.request(true))
		if err != nil {
			return err
		}

		if jsonOutput {
			if err := outputJSON(plan); err != nil {
				return err
			}
		} else {
			printPlan(plan, p)
			printConflicts(plan)
		}

		if plan.HasConflicts() {
			return fmt.Errorf("%w: %d conflicts detected", engine.ErrConflict, len(plan.Conflicts))
		}
		return nil
	},
}

// printConflicts lists the conflicts of a plan on stderr.
func printConflicts(plan *planner.BuildPlan) {
	if !plan.HasConflicts() {
		return
	}
	PrintSection("Conflicts Detected")
	for _, conflict := range plan.Conflicts {
		PrintError(fmt.Sprintf("%s: %s", conflict.Name, conflict.Reason))
	}
}

// printPlan prints the operations of a plan and the bundler options.
func printPlan(plan *planner.BuildPlan, p *project) {
	PrintSection("Build Plan")
	PrintLabelValue("Hooks", p.paths.Hooks)
	PrintLabelValue("Dist", p.paths.Dist)
	fmt.Println()

	if len(plan.Operations) == 0 {
		PrintEmptyState("Nothing to build")
	} else {
		rows := make([][]string, 0, len(plan.Operations))
		for _, op := range plan.Operations {
			rows = append(rows, []string{op.Type, op.Name, op.DestPath})
		}
		PrintTable([]string{"OPERATION", "HOOK", "OUTPUT"}, rows)
	}

	if plan.Count(planner.OpBundle) > 0 {
		fmt.Println()
		PrintInfo("Bundler options:")
		PrintList(p.options.Describe(), 1)
	}
	fmt.Println()
	PrintInfo(fmt.Sprintf("Would run %s", PrintCount(len(plan.Operations), "operation", "operations")))
}
