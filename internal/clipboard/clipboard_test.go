package clipboard

import (
	"bytes"
	"errors"
	"testing"
)

func TestStream_WriteAll(t *testing.T) {
	var buf bytes.Buffer
	w := Stream{W: &buf}
	if err := w.WriteAll("\n    x\n"); err != nil {
		t.Fatalf("WriteAll error: %v", err)
	}
	if buf.String() != "\n    x\n" {
		t.Errorf("wrote %q", buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("pipe closed") }

func TestStream_WriteAllError(t *testing.T) {
	if err := (Stream{W: failingWriter{}}).WriteAll("x"); err == nil {
		t.Error("expected error from failing writer")
	}
}

func TestMemory_ReplacesContent(t *testing.T) {
	m := &Memory{}
	_ = m.WriteAll("first")
	_ = m.WriteAll("second")
	if m.Text != "second" || m.Writes != 2 {
		t.Errorf("Memory = %+v, want last write only", m)
	}

	m.Err = errors.New("no display")
	if err := m.WriteAll("third"); err == nil {
		t.Error("expected configured error")
	}
	if m.Text != "second" {
		t.Errorf("Text changed on failed write: %q", m.Text)
	}
}

var _ Writer = System{}
