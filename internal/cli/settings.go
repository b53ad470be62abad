package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/redcode/internal/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage persisted settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the settings, creating the file if it does not exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := settings.Load(settings.Path())
		if err != nil {
			return failRuntime(cmd, err)
		}

		data, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a settings value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := settings.Path()
		rec, err := settings.Load(path)
		if err != nil {
			// Malformed file: start from defaults
			rec, err = settings.Default()
			if err != nil {
				return failRuntime(cmd, err)
			}
		}

		if err := settings.SetField(&rec, args[0], args[1]); err != nil {
			return err
		}

		if err := settings.Save(path, rec); err != nil {
			return failRuntime(cmd, fmt.Errorf("saving settings: %w", err))
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", args[0], args[1])
		return nil
	},
}

var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file location",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), settings.Path())
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsPathCmd)
}
