package cli

import (
	"fmt"

	"github.com/odingame/forge/internal/branding"
	"github.com/spf13/cobra"
)

var depsDryRun bool

var depsCmd = &cobra.Command{
	Use:   "deps",
	Short: "Fetch and build native libraries",
	Long: `Clone each library listed under native_libs, build it with CMake and stage
its shared library for the target OS. Full builds copy staged libraries into
the release directory.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		c := newConfigurator(cmd)
		if err := c.CheckHost(sess.project.Settings.Target); err != nil {
			return err
		}
		steps := c.NativeSteps()
		if len(steps) == 0 {
			fmt.Fprintf(out, "No native libraries configured in %s.\n", branding.ConfigFile())
			return nil
		}
		if depsDryRun {
			steps.Describe(out)
			return nil
		}
		return steps.Execute(cmd.Context(), out)
	},
}

func init() {
	depsCmd.Flags().BoolVar(&depsDryRun, "dry-run", false, "Print the commands without running them")
	rootCmd.AddCommand(depsCmd)
}
