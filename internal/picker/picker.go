package picker

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sqweek/dialog"
)

// ErrCancelled is returned when the user dismisses the dialog.
var ErrCancelled = errors.New("open cancelled")

// Picker returns the path of a file chosen by the user. start is the last
// opened path and is only a hint.
type Picker interface {
	Pick(start string) (string, error)
}

// Native uses the platform file dialog.
type Native struct {
	Title string
}

// Pick shows an open dialog starting near start.
func (n Native) Pick(start string) (string, error) {
	title := n.Title
	if title == "" {
		title = "Open a file"
	}
	b := dialog.File().Title(title)
	if dir := StartDir(start); dir != "" {
		b = b.SetStartDir(dir)
	}
	path, err := b.Load()
	if err != nil {
		if errors.Is(err, dialog.ErrCancelled) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("open dialog: %w", err)
	}
	if path == "" {
		return "", ErrCancelled
	}
	return path, nil
}

// StartDir resolves the directory a dialog should open in. A directory is
// used as is; a file path yields its parent. Paths that no longer exist fall
// back to the nearest existing ancestor.
func StartDir(start string) string {
	if start == "" {
		return ""
	}
	p := filepath.Clean(start)
	for {
		info, err := os.Stat(p)
		if err == nil {
			if info.IsDir() {
				return p
			}
			return filepath.Dir(p)
		}
		parent := filepath.Dir(p)
		if parent == p {
			return ""
		}
		p = parent
	}
}

// Fixed always picks Path. An empty Path behaves like a cancelled dialog.
type Fixed struct {
	Path string
}

// Pick returns f.Path.
func (f Fixed) Pick(string) (string, error) {
	if f.Path == "" {
		return "", ErrCancelled
	}
	return f.Path, nil
}

// Func adapts a plain function to Picker.
type Func func(start string) (string, error)

// Pick calls fn.
func (fn Func) Pick(start string) (string, error) {
	return fn(start)
}
