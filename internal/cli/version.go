package cli

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/odingame/forge/internal/branding"
	"github.com/spf13/cobra"
)

var (
	versionShort bool
	versionJSON  bool
)

// versionInfo describes the running binary.
type versionInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Module  string `json:"module"`
	Go      string `json:"go"`
	Host    string `json:"host"`
}

func currentVersion() versionInfo {
	return versionInfo{
		Version: buildVersion,
		Commit:  buildCommit,
		Date:    buildDate,
		Module:  branding.GoModule(),
		Go:      runtime.Version(),
		Host:    hostTarget(),
	}
}

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Print version information",
	Long:        `Print the forge release, its source commit and build date, and the host target it builds for.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipProject: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		info := currentVersion()
		switch {
		case versionShort:
			fmt.Fprintln(out, info.Version)
		case versionJSON:
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(info); err != nil {
				return fmt.Errorf("encoding version info: %w", err)
			}
		default:
			fmt.Fprintf(out, "%s %s (commit %s, built %s) for %s\n", branding.CLIName(), info.Version, info.Commit, info.Date, info.Host)
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	versionCmd.MarkFlagsMutuallyExclusive("short", "json")
	rootCmd.AddCommand(versionCmd)
}
