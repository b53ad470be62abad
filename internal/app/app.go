package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/dshills/redcode/internal/clipboard"
	"github.com/dshills/redcode/internal/codeblock"
	"github.com/dshills/redcode/internal/editor"
	"github.com/dshills/redcode/internal/history"
	"github.com/dshills/redcode/internal/picker"
	"github.com/dshills/redcode/internal/settings"
)

// Notification titles.
const (
	TitleDone    = "Done"
	TitleError   = "Error"
	TitleWarning = "Warning"
)

// Notifier shows a message to the user.
type Notifier interface {
	Notify(title, message string)
}

// NotifyFunc adapts a function to Notifier.
type NotifyFunc func(title, message string)

// Notify calls fn.
func (fn NotifyFunc) Notify(title, message string) {
	fn(title, message)
}

// App is the composition root shared by the terminal editor and the CLI.
type App struct {
	Settings     *settings.Record
	SettingsPath string
	Clipboard    clipboard.Writer
	Picker       picker.Picker
	History      *history.Store
	Notifier     Notifier
}

// Done formats the document, censoring its marked spans, and places the
// result on the clipboard. The censored spans are consumed on success. On
// failure the document is left untouched.
func (a *App) Done(doc *editor.Document) (string, error) {
	block := codeblock.Format(doc.Text(), doc.Censored())
	if err := a.Clipboard.WriteAll(block); err != nil {
		a.notify(TitleError, fmt.Sprintf("Could not copy to clipboard: %v", err))
		return "", err
	}
	doc.ClearCensored()

	if a.History != nil {
		if _, err := a.History.Put(block); err != nil {
			a.notify(TitleWarning, fmt.Sprintf("Could not record history: %v", err))
		}
	}
	a.notify(TitleDone, "Codeblock copied to clipboard.\nPaste it in markdown mode.")
	return block, nil
}

// Open asks the picker for a file and loads it into the document. A
// cancelled dialog is a no-op. The document is replaced only after the file
// has been read completely; the settings are updated only after that, with
// the absolute path of the file.
func (a *App) Open(doc *editor.Document) (string, error) {
	start := ""
	if a.Settings != nil {
		start = a.Settings.LoadFrom
	}
	path, err := a.Picker.Pick(start)
	if err != nil {
		if errors.Is(err, picker.ErrCancelled) {
			return "", nil
		}
		a.notify(TitleError, fmt.Sprintf("Could not open file: %v", err))
		return "", err
	}
	if path == "" {
		return "", nil
	}

	text, err := ReadText(path)
	if err != nil {
		a.notify(TitleError, fmt.Sprintf("Could not open file: %v", err))
		return "", err
	}
	doc.SetText(text)

	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	if a.Settings != nil && a.Settings.Remember(path) && a.SettingsPath != "" {
		if err := settings.Save(a.SettingsPath, *a.Settings); err != nil {
			a.notify(TitleWarning, fmt.Sprintf("Could not save settings: %v", err))
		}
	}
	return path, nil
}

// Clear empties the document.
func (a *App) Clear(doc *editor.Document) {
	doc.Clear()
}

// Censor marks the current selection as censored. It reports whether there
// was a selection.
func (a *App) Censor(doc *editor.Document) bool {
	if doc.CensorSelection() {
		return true
	}
	a.notify(TitleWarning, "Select text to censor first.")
	return false
}

func (a *App) notify(title, message string) {
	if a.Notifier != nil {
		a.Notifier.Notify(title, message)
	}
}

// ErrNotText is returned for files that are not valid UTF-8.
var ErrNotText = errors.New("file is not valid UTF-8 text")

// ReadText reads the whole file at path as text.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("reading %s: %w", path, ErrNotText)
	}
	return string(data), nil
}
