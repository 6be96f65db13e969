package cli

import (
	"time"

	"github.com/odingame/forge/internal/build"
	"github.com/spf13/cobra"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild the game library when sources change",
	Long: `Watch the game package and run a hot-reload build after each change.
The driver is never rebuilt; a running game picks up the new library.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := sess.project.Settings
		opts := build.Options{
			Version:     s.Version,
			Target:      s.Target,
			ReleasePath: s.ReleasePath,
		}
		c := newConfigurator(cmd)
		if err := c.CheckHost(opts.Target); err != nil {
			return err
		}
		return c.Watch(cmd.Context(), opts, watchDebounce, nil)
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", build.DefaultDebounce, "Quiet period before rebuilding")
	rootCmd.AddCommand(watchCmd)
}
