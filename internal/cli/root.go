package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dshills/redcode/internal/app"
	"github.com/dshills/redcode/internal/clipboard"
	"github.com/dshills/redcode/internal/editor"
	"github.com/dshills/redcode/internal/history"
	"github.com/dshills/redcode/internal/picker"
	"github.com/dshills/redcode/internal/settings"
	"github.com/dshills/redcode/internal/tui"
)

const version = "0.3.0"

// Exit codes
const (
	ExitSuccess      = 0
	ExitUsageError   = 2
	ExitRuntimeError = 4
)

// envHistory enables clipboard history when set to "on".
const envHistory = "REDCODE_HISTORY"

// flagHistory enables clipboard history for a single run.
var flagHistory bool

var rootCmd = &cobra.Command{
	Use:   "redcode [file]",
	Short: "Format text as a markdown codeblock and copy it to the clipboard",
	Long: "redcode is a small editor that indents every line by four spaces so the text\n" +
		"renders as a codeblock in markdown, masks censored spans, and copies the result\n" +
		"to the clipboard.",
	Args: cobra.MaximumNArgs(1),
	RunE: runEditor,
}

func init() {
	cobra.OnInitialize(loadDotEnv)
	rootCmd.Flags().BoolVar(&flagHistory, "history", false, "Keep copied codeblocks in the history (also REDCODE_HISTORY=on)")
}

// loadDotEnv reads a .env file from the working directory, if any. Variables
// already set in the environment win.
func loadDotEnv() {
	_ = godotenv.Load()
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

// Collaborators, replaced in tests.
var (
	newClipboard = func() clipboard.Writer { return clipboard.System{} }
	newPicker    = func() picker.Picker { return picker.Native{} }
	newScreen    = tcell.NewScreen
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print redcode version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "redcode version %s\n", version)
	},
}

func runEditor(cmd *cobra.Command, args []string) error {
	a := newApp(cmd)
	a.Clipboard = newClipboard()

	doc := editor.New("")
	if len(args) == 1 {
		a.Picker = picker.Fixed{Path: args[0]}
		if _, err := a.Open(doc); err != nil {
			return failRuntime(cmd, err)
		}
	}
	a.Picker = newPicker()

	screen, err := newScreen()
	if err != nil {
		return failRuntime(cmd, fmt.Errorf("opening terminal: %w", err))
	}
	if err := tui.New(screen, a, doc).Run(); err != nil {
		return failRuntime(cmd, err)
	}
	return nil
}

// newApp loads settings and history and returns an App that reports to
// the command's stderr.
func newApp(cmd *cobra.Command) *app.App {
	path := settings.Path()
	rec := settings.LoadOrDefault(path, cmd.ErrOrStderr())
	return &app.App{
		Settings:     &rec,
		SettingsPath: path,
		History:      openHistory(cmd.ErrOrStderr(), historyEnabled()),
		Notifier:     stderrNotifier{w: cmd.ErrOrStderr()},
	}
}

// historyEnabled reports whether codeblocks should be kept after Done.
// History is off unless --history or REDCODE_HISTORY=on asks for it.
func historyEnabled() bool {
	return flagHistory || strings.EqualFold(os.Getenv(envHistory), "on")
}

func openHistory(warn io.Writer, enabled bool) *history.Store {
	store, err := history.New(enabled, "", history.DefaultTTLSeconds)
	if err != nil {
		fmt.Fprintf(warn, "Warning: history disabled: %v\n", err)
		store, _ = history.New(false, "", 0)
	}
	return store
}

// stderrNotifier prints notifications as plain lines. Errors are skipped
// because commands report them through failRuntime.
type stderrNotifier struct {
	w     io.Writer
	quiet bool
}

func (n stderrNotifier) Notify(title, message string) {
	switch title {
	case app.TitleError:
		return
	case app.TitleDone:
		if n.quiet {
			return
		}
	}
	fmt.Fprintf(n.w, "%s: %s\n", title, strings.ReplaceAll(message, "\n", " "))
}

func failRuntime(cmd *cobra.Command, err error) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	exitCode = ExitRuntimeError
	return nil
}
