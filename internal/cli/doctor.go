package cli

import (
	"fmt"

	"github.com/odingame/forge/internal/doctor"
	"github.com/spf13/cobra"
)

var (
	checkTools   bool
	checkConfig  bool
	checkRelease bool
)

func init() {
	doctorCmd.Flags().BoolVar(&checkTools, "check-tools", false, "Verify compiler and helper tools are installed")
	doctorCmd.Flags().BoolVar(&checkConfig, "check-config", false, "Validate the config file")
	doctorCmd.Flags().BoolVar(&checkRelease, "check-release", false, "Verify the release directory layout")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the build environment",
	Long:  `Run diagnostic checks on the toolchain, the config file and the release directory.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d := doctor.New(cmd.OutOrStdout(), sess.runner, sess.project, sess.policy)

		// If no specific flag, run all checks.
		if !checkTools && !checkConfig && !checkRelease {
			d.RunAll(cmd.Context())
		} else {
			if checkTools {
				d.CheckTools(cmd.Context())
			}
			if checkConfig {
				d.CheckConfig()
			}
			if checkRelease {
				d.CheckRelease()
			}
		}

		report := d.Report()
		if !report.OK() {
			return fmt.Errorf("doctor found %d missing item(s) and %d failure(s)", report.Missing, report.Failures)
		}
		return nil
	},
}
