package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var shadersDryRun bool

var shadersCmd = &cobra.Command{
	Use:   "shaders",
	Short: "Compile shaders to SPIR-V",
	Long:  `Compile every shader listed under shaders.sources with glslc, in order.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		steps := newConfigurator(cmd).ShaderSteps()
		if len(steps) == 0 {
			fmt.Fprintln(out, "No shaders configured.")
			return nil
		}
		if shadersDryRun {
			steps.Describe(out)
			return nil
		}
		return steps.Execute(cmd.Context(), out)
	},
}

func init() {
	shadersCmd.Flags().BoolVar(&shadersDryRun, "dry-run", false, "Print the commands without running them")
	rootCmd.AddCommand(shadersCmd)
}
