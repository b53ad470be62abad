package cli

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/dshills/redcode/internal/app"
	"github.com/dshills/redcode/internal/censor"
	"github.com/dshills/redcode/internal/clipboard"
	"github.com/dshills/redcode/internal/editor"
)

var (
	flagCensor        string
	flagCensorSecrets bool
	flagPrint         bool
)

var formatCmd = &cobra.Command{
	Use:   "format [file]",
	Short: "Format a file or stdin as a codeblock and copy it to the clipboard",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFormat,
}

func init() {
	formatCmd.Flags().StringVar(&flagCensor, "censor", "", "Rune ranges to mask, as start:end pairs (comma-separated)")
	formatCmd.Flags().BoolVar(&flagCensorSecrets, "censor-secrets", false, "Mask values that look like API keys, tokens or passwords")
	formatCmd.Flags().BoolVar(&flagPrint, "print", false, "Write the codeblock to stdout instead of the clipboard")
	formatCmd.Flags().BoolVar(&flagHistory, "history", false, "Keep the codeblock in the history (also REDCODE_HISTORY=on)")
}

func runFormat(cmd *cobra.Command, args []string) error {
	censored, err := censor.ParseRanges(flagCensor)
	if err != nil {
		return err
	}

	text, err := readInput(cmd, args)
	if err != nil {
		return failRuntime(cmd, err)
	}

	doc := editor.New(text)
	for _, r := range censored.Ranges() {
		doc.Censor(r)
	}
	if flagCensorSecrets {
		for _, r := range censor.FindSecrets(text) {
			doc.Censor(r)
		}
	}

	a := &app.App{
		History:  openHistory(cmd.ErrOrStderr(), historyEnabled()),
		Notifier: stderrNotifier{w: cmd.ErrOrStderr(), quiet: flagPrint},
	}
	if flagPrint {
		a.Clipboard = clipboard.Stream{W: cmd.OutOrStdout()}
	} else {
		a.Clipboard = newClipboard()
	}
	if _, err := a.Done(doc); err != nil {
		return failRuntime(cmd, err)
	}
	return nil
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return app.ReadText(args[0])
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("reading stdin: %w", app.ErrNotText)
	}
	return string(data), nil
}
