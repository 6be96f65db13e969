package cli

import (
	"fmt"

	"github.com/odingame/forge/internal/build"
	"github.com/spf13/cobra"
)

var (
	buildHot     bool
	buildRun     bool
	buildPackage bool
	buildDryRun  bool
)

var buildCmd = &cobra.Command{
	Use:   "build [hot] [run] [package] [distribute]",
	Short: "Build the game library and driver",
	Long: `Build the hot-reloadable game library and, unless hot reloading, the driver
executable, then stage companion libraries and link the asset tree into the
release directory.

If the game is already running the build switches to hot reload so the
driver the running process holds open is not overwritten.`,
	Args:      tokenArgs,
	ValidArgs: build.ValidTokens,
	RunE:      runBuild,
}

func init() {
	addBuildFlags(buildCmd)
	rootCmd.AddCommand(buildCmd)
}

func addBuildFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&buildHot, "hot", false, "Rebuild only the game library")
	cmd.Flags().BoolVar(&buildRun, "run", false, "Launch the driver after a full build")
	cmd.Flags().BoolVar(&buildPackage, "package", false, "Packaging build (not implemented)")
	cmd.Flags().BoolVar(&buildDryRun, "dry-run", false, "Print the build plan without running it")
}

func runBuild(cmd *cobra.Command, args []string) error {
	opts, err := build.ParseTokens(args)
	if err != nil {
		return err
	}
	opts.HotReload = opts.HotReload || buildHot
	opts.Run = opts.Run || buildRun
	opts.Package = opts.Package || buildPackage

	s := sess.project.Settings
	opts.Version = s.Version
	opts.Target = s.Target
	opts.ReleasePath = s.ReleasePath

	out := cmd.OutOrStdout()
	c := newConfigurator(cmd)

	plan, err := c.Plan(cmd.Context(), opts)
	if err != nil {
		return err
	}

	if buildDryRun {
		fmt.Fprintf(out, "Build plan for %s (hot reload: %t):\n", opts.Target, plan.Options.HotReload)
		plan.Steps.Describe(out)
		return nil
	}

	if err := plan.Steps.Execute(cmd.Context(), out); err != nil {
		return err
	}

	if plan.Options.HotReload {
		fmt.Fprintf(out, "Reloaded %s\n", plan.Library)
	} else {
		fmt.Fprintf(out, "Built %s (v%s)\n", plan.Executable, plan.Options.Version)
	}
	return nil
}

// tokenArgs rejects unknown build tokens before any command runs.
func tokenArgs(_ *cobra.Command, args []string) error {
	_, err := build.ParseTokens(args)
	return err
}
