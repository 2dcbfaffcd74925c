package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	jsonOutput   bool
	rootDir      string
	manifestPath string
	noColor      bool

	// Colors for help output sections
	groupTitleColor   = color.New(color.FgCyan, color.Bold)
	sectionTitleColor = color.New(color.FgBlue, color.Bold)
)

// rootCmd is the root command for hookbuild. Run without a subcommand it
// builds the hooks.
var rootCmd = &cobra.Command{
	Use:     "hookbuild",
	Version: "dev",
	Short:   "Bundle hook scripts into self-contained distributable files",
	Long: `hookbuild bundles hook scripts into self-contained files under hooks/dist.

Hooks with npm dependencies are bundled with esbuild: dependencies are inlined,
WASM payloads are embedded and the output is minified. Dependency-free hooks are
copied byte-for-byte. Missing hooks are skipped with a warning.`,
	Args:          cobra.NoArgs,
	RunE:          runBuild,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			color.NoColor = true
		}
	},
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// customHelpFunc prints help with colored section and group titles.
func customHelpFunc(cmd *cobra.Command, args []string) {
	var help strings.Builder
	section := func(title string, c *color.Color) {
		help.WriteString(c.Sprint(title))
		help.WriteString("\n")
	}
	command := func(c *cobra.Command) {
		fmt.Fprintf(&help, "  %-11s %s\n", c.Name(), c.Short)
	}

	if cmd.Long != "" {
		help.WriteString(cmd.Long)
		help.WriteString("\n\n")
	}

	section("Usage:", sectionTitleColor)
	fmt.Fprintf(&help, "  %s\n\n", cmd.UseLine())

	for _, group := range cmd.Groups() {
		section(group.Title, groupTitleColor)
		for _, c := range cmd.Commands() {
			if c.GroupID == group.ID && c.IsAvailableCommand() {
				command(c)
			}
		}
		help.WriteString("\n")
	}

	// Subcommands such as completion's shells have no group
	var ungrouped []*cobra.Command
	for _, c := range cmd.Commands() {
		if c.GroupID == "" && c.IsAvailableCommand() {
			ungrouped = append(ungrouped, c)
		}
	}
	if len(ungrouped) > 0 {
		section("Commands:", sectionTitleColor)
		for _, c := range ungrouped {
			command(c)
		}
		help.WriteString("\n")
	}

	if cmd.HasAvailableLocalFlags() || cmd.HasAvailableInheritedFlags() {
		section("Flags:", sectionTitleColor)
		help.WriteString(cmd.LocalFlags().FlagUsages())
		help.WriteString(cmd.InheritedFlags().FlagUsages())
		help.WriteString("\n")
	}

	if cmd.HasAvailableSubCommands() {
		fmt.Fprintf(&help, "Use \"%s [command] --help\" for more information about a command.\n", cmd.CommandPath())
	}

	fmt.Fprint(cmd.OutOrStdout(), help.String())
}

// completionShells maps each supported shell to its script generator.
var completionShells = []struct {
	name string
	gen  func(w io.Writer) error
}{
	{"bash", func(w io.Writer) error { return rootCmd.GenBashCompletionV2(w, true) }},
	{"zsh", func(w io.Writer) error { return rootCmd.GenZshCompletion(w) }},
	{"fish", func(w io.Writer) error { return rootCmd.GenFishCompletion(w, true) }},
}

func newCompletionCmd() *cobra.Command {
	completionCmd := &cobra.Command{
		Use:     "completion",
		Short:   "Generate the autocompletion script for the specified shell",
		GroupID: "cli-tooling",
		Long: `Generate the autocompletion script for hookbuild for the specified shell.
See each sub-command's help for details on how to use the generated script.`,
	}
	for _, shell := range completionShells {
		gen := shell.gen
		completionCmd.AddCommand(&cobra.Command{
			Use:                   shell.name,
			Short:                 "Generate the autocompletion script for " + shell.name,
			Args:                  cobra.NoArgs,
			DisableFlagsInUseLine: true,
			RunE: func(cmd *cobra.Command, args []string) error {
				return gen(os.Stdout)
			},
		})
	}
	return completionCmd
}

func init() {
	rootCmd.SetHelpFunc(customHelpFunc)

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	flags.StringVar(&rootDir, "root", "", "Project root (default: $HOOKBUILD_ROOT, the enclosing git repository, or the current directory)")
	flags.StringVar(&manifestPath, "manifest", "", "Path to the HCL manifest (default: <root>/hookbuild.hcl)")
	flags.BoolVar(&noColor, "no-color", false, "Disable colored output")
	addDryRunFlag(rootCmd)

	rootCmd.AddGroup(
		&cobra.Group{ID: "build", Title: "Build:"},
		&cobra.Group{ID: "cli-tooling", Title: "CLI & Tooling:"},
	)

	rootCmd.AddCommand(&cobra.Command{
		Use:     "version",
		Short:   "Print the hookbuild CLI version",
		Args:    cobra.NoArgs,
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), rootCmd.Version)
		},
	})

	rootCmd.SetHelpCommand(&cobra.Command{
		Use:     "help [command]",
		Short:   "Help about any command",
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			target, _, err := cmd.Root().Find(args)
			if err != nil || target == nil {
				target = cmd.Root()
			}
			_ = target.Help()
		},
	})

	rootCmd.AddCommand(newCompletionCmd())

	// Build commands
	buildCmd.GroupID = "build"
	planCmd.GroupID = "build"
	rootCmd.AddCommand(buildCmd, planCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
