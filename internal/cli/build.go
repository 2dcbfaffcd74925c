package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/hookbuild/internal/engine"
)

var buildDryRun bool

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Bundle and copy hooks into the dist directory",
	Long: `Build every hook listed in the manifest. This is what running hookbuild
without a subcommand does.

Bundled hooks are written first, in list order, then copied hooks. A missing
hook is skipped with a warning. Any other failure stops the build; artifacts
already written are left in place.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	p, err := loadProject()
	if err != nil {
		return err
	}

	var reporter engine.Reporter = progressReporter{}
	if jsonOutput {
		reporter = warningReporter{}
	}
	eng := newEngine(p, reporter)

	report, err := eng.Build(context.Background(), p.request(buildDryRun))
	if jsonOutput && report != nil {
		if jerr := outputJSON(report); jerr != nil && err == nil {
			err = jerr
		}
		return wrapBuildError(err)
	}

	if report != nil {
		printConflicts(report.Plan)
	}
	if err != nil {
		return wrapBuildError(err)
	}

	if buildDryRun {
		printPlan(report.Plan, p)
		return nil
	}

	fmt.Println()
	PrintSuccess("Build complete.")
	PrintLabelValue("Built", PrintCount(report.Count(engine.StatusBuilt), "artifact", "artifacts"))
	if skipped := report.Count(engine.StatusSkipped); skipped > 0 {
		PrintLabelValue("Skipped", PrintCount(skipped, "hook", "hooks"))
	}
	return nil
}

func wrapBuildError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("build failed: %w", err)
}

// addDryRunFlag registers --dry-run on cmd. Both the root command and build
// run runBuild, so they share the flag.
func addDryRunFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&buildDryRun, "dry-run", false, "Show what would be built without writing anything")
}

func init() {
	addDryRunFlag(buildCmd)
}
