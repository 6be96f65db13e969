package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/odingame/forge/internal/branding"
	"github.com/odingame/forge/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configKeysCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage project settings",
	Long:  `Read and write project settings stored in ` + branding.ConfigFile() + ` at the project root.`,
}

var configSetCmd = &cobra.Command{
	Use:         "set <key> <value>",
	Short:       "Set a configuration value",
	Args:        cobra.ExactArgs(2),
	Annotations: map[string]string{skipProject: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.Set(sess.root, key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), sess.project.Get(args[0]))
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show effective settings and where each comes from",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"KEY", "VALUE", "SOURCE"})
		for _, k := range config.ScalarKeys() {
			t.AppendRow(table.Row{k, sess.project.Get(k), sess.project.Source(k)})
		}
		t.Render()
		return nil
	},
}

var configKeysCmd = &cobra.Command{
	Use:         "keys",
	Short:       "List configuration keys",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipProject: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, k := range config.Keys() {
			fmt.Fprintln(cmd.OutOrStdout(), k)
		}
		return nil
	},
}
