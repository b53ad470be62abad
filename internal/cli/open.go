package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/redcode/internal/editor"
	"github.com/dshills/redcode/internal/picker"
)

var flagDialog bool

var openCmd = &cobra.Command{
	Use:   "open [file]",
	Short: "Open a file, remember its location and print its content",
	Long: "Open reads a file the same way the editor does and records its path in the\n" +
		"settings file. With --dialog the file is chosen in the system open dialog,\n" +
		"starting at the last opened location.",
	Args: cobra.MaximumNArgs(1),
	RunE: runOpen,
}

func init() {
	openCmd.Flags().BoolVar(&flagDialog, "dialog", false, "Choose the file with the system open dialog")
}

func runOpen(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && !flagDialog {
		return fmt.Errorf("open requires a file argument or --dialog")
	}

	a := newApp(cmd)
	if len(args) == 1 {
		a.Picker = picker.Fixed{Path: args[0]}
	} else {
		a.Picker = newPicker()
	}

	doc := editor.New("")
	path, err := a.Open(doc)
	if err != nil {
		return failRuntime(cmd, err)
	}
	if path == "" {
		fmt.Fprintln(cmd.ErrOrStderr(), "Open cancelled.")
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), doc.Text())
	return nil
}
