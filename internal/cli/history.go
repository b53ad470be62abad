package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dshills/redcode/internal/app"
	"github.com/dshills/redcode/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the history of copied codeblocks",
	Long: "Codeblocks are only kept when format or the editor runs with --history or\n" +
		"REDCODE_HISTORY=on. These commands read and clear whatever was kept.",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List copied codeblocks, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := openHistory(cmd.ErrOrStderr(), true)
		if !store.Enabled() {
			fmt.Fprintln(cmd.OutOrStdout(), "History is disabled.")
			return nil
		}
		entries, err := store.List()
		if err != nil {
			return failRuntime(cmd, err)
		}
		for _, e := range entries {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s\n",
				shortKey(e.Key), e.CreatedAt.Local().Format(time.DateTime), e.Preview(50))
		}
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <key>",
	Short: "Print a stored codeblock",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, err := lookupEntry(cmd, args[0])
		if err != nil {
			return failRuntime(cmd, err)
		}
		fmt.Fprint(cmd.OutOrStdout(), entry.Codeblock)
		return nil
	},
}

var historyCopyCmd = &cobra.Command{
	Use:   "copy <key>",
	Short: "Copy a stored codeblock to the clipboard again",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, err := lookupEntry(cmd, args[0])
		if err != nil {
			return failRuntime(cmd, err)
		}
		if err := newClipboard().WriteAll(entry.Codeblock); err != nil {
			return failRuntime(cmd, err)
		}
		stderrNotifier{w: cmd.ErrOrStderr()}.Notify(app.TitleDone, "Codeblock copied to clipboard.")
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all stored codeblocks",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := openHistory(cmd.ErrOrStderr(), true)
		if err := store.Clear(); err != nil {
			return failRuntime(cmd, fmt.Errorf("clearing history: %w", err))
		}
		fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
		return nil
	},
}

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show history statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := openHistory(cmd.ErrOrStderr(), true)
		if !store.Enabled() {
			fmt.Fprintln(cmd.OutOrStdout(), "History is disabled.")
			return nil
		}
		stats, err := store.GetStats()
		if err != nil {
			return failRuntime(cmd, fmt.Errorf("reading history stats: %w", err))
		}
		data, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func shortKey(key string) string {
	if len(key) > 12 {
		return key[:12]
	}
	return key
}

func lookupEntry(cmd *cobra.Command, key string) (history.Entry, error) {
	store := openHistory(cmd.ErrOrStderr(), true)
	entry, ok := store.Get(key)
	if !ok {
		return history.Entry{}, fmt.Errorf("no unique history entry matches %q", key)
	}
	return entry, nil
}

func init() {
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyCopyCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyStatsCmd)
}
