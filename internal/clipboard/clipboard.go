package clipboard

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"
)

// Writer receives the full text to place on the clipboard.
type Writer interface {
	WriteAll(text string) error
}

// System writes to the operating system clipboard.
type System struct{}

// WriteAll replaces the clipboard content with text.
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard is not supported on this system")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}

// Stream writes clipboard content to an io.Writer.
type Stream struct {
	W io.Writer
}

// WriteAll writes text verbatim.
func (s Stream) WriteAll(text string) error {
	if _, err := io.WriteString(s.W, text); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// Memory keeps the last written text. It is used when no system clipboard is
// reachable, such as in tests.
type Memory struct {
	Text   string
	Writes int
	Err    error
}

// WriteAll stores text unless Err is set.
func (m *Memory) WriteAll(text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Text = text
	m.Writes++
	return nil
}
