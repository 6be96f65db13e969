package cli

import (
	"fmt"
	"path/filepath"

	"github.com/odingame/forge/internal/branding"
	"github.com/odingame/forge/internal/scaffold"
	"github.com/spf13/cobra"
)

var initName string

func init() {
	initCmd.Flags().StringVar(&initName, "name", "", "Game name (default: project directory name)")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a new game project",
	Long: `Create ` + branding.ConfigFile() + `, a reloadable game package, a driver package,
starter shaders and an empty asset tree in the project root. Existing source
files are left untouched.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipProject: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := filepath.Abs(sess.root)
		if err != nil {
			return fmt.Errorf("resolving project root: %w", err)
		}
		name := initName
		if name == "" {
			name = filepath.Base(root)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Initializing %s in %s\n", name, root)

		result, err := scaffold.Generate(scaffold.NewData(name), root)
		if err != nil {
			return fmt.Errorf("initializing project: %w", err)
		}
		for _, f := range result.Files {
			fmt.Fprintf(out, "  created %s\n", f)
		}
		for _, w := range result.Warnings {
			fmt.Fprintf(out, "  warning: %s\n", w)
		}

		fmt.Fprintf(out, "\nRun '%s build run' to build and launch the game.\n", branding.CLIName())
		return nil
	},
}
