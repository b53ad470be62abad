package editor

import (
	"github.com/dshills/redcode/internal/censor"
)

// Document is the editable text plus cursor, selection and censored spans.
type Document struct {
	text     []rune
	cursor   int
	anchor   int
	selected bool
	censored censor.Set
}

// New returns a document holding text with the cursor at the start.
func New(text string) *Document {
	d := &Document{}
	d.SetText(text)
	return d
}

// Text returns the full document text.
func (d *Document) Text() string {
	return string(d.text)
}

// Len returns the document length in runes.
func (d *Document) Len() int {
	return len(d.text)
}

// SetText replaces the whole document. Cursor, selection and censored spans
// are reset.
func (d *Document) SetText(text string) {
	d.text = []rune(text)
	d.cursor = 0
	d.selected = false
	d.censored.Clear()
}

// Censored returns the censored spans.
func (d *Document) Censored() censor.Set {
	return d.censored
}

// ClearCensored forgets every censored span.
func (d *Document) ClearCensored() {
	d.censored.Clear()
}

// Censor marks r as censored. It is clamped to the document.
func (d *Document) Censor(r censor.Range) {
	r.Start = max(r.Start, 0)
	r.End = min(r.End, len(d.text))
	d.censored.Add(r)
}

// IsCensored reports whether the rune at offset is censored.
func (d *Document) IsCensored(offset int) bool {
	return d.censored.Contains(offset)
}

// Cursor returns the cursor offset.
func (d *Document) Cursor() int {
	return d.cursor
}

// SetCursor moves the cursor to offset, clamped to the document, and drops
// the selection.
func (d *Document) SetCursor(offset int) {
	d.selected = false
	d.cursor = clamp(offset, 0, len(d.text))
}

// Selection returns the selected range, if any.
func (d *Document) Selection() (censor.Range, bool) {
	if !d.selected || d.anchor == d.cursor {
		return censor.Range{}, false
	}
	return censor.Range{Start: min(d.anchor, d.cursor), End: max(d.anchor, d.cursor)}, true
}

// Select selects r and places the cursor at its end.
func (d *Document) Select(r censor.Range) {
	d.anchor = clamp(r.Start, 0, len(d.text))
	d.cursor = clamp(r.End, 0, len(d.text))
	d.selected = true
}

// IsSelected reports whether the rune at offset is inside the selection.
func (d *Document) IsSelected(offset int) bool {
	r, ok := d.Selection()
	return ok && offset >= r.Start && offset < r.End
}

// CensorSelection adds the selection to the censored spans and clears the
// selection. It reports whether anything was selected.
func (d *Document) CensorSelection() bool {
	r, ok := d.Selection()
	if !ok {
		return false
	}
	d.censored.Add(r)
	d.selected = false
	return true
}

// Insert inserts s at the cursor, replacing the selection if there is one.
func (d *Document) Insert(s string) {
	d.deleteSelection()
	ins := []rune(s)
	if len(ins) == 0 {
		return
	}
	at := d.cursor
	text := make([]rune, 0, len(d.text)+len(ins))
	text = append(text, d.text[:at]...)
	text = append(text, ins...)
	text = append(text, d.text[at:]...)
	d.text = text
	d.censored.Shift(at, len(ins))
	d.cursor = at + len(ins)
}

// InsertRune inserts a single rune at the cursor.
func (d *Document) InsertRune(r rune) {
	d.Insert(string(r))
}

// Backspace deletes the selection or the rune before the cursor.
func (d *Document) Backspace() {
	if d.deleteSelection() {
		return
	}
	if d.cursor == 0 {
		return
	}
	d.deleteRange(d.cursor-1, d.cursor)
}

// Delete deletes the selection or the rune under the cursor.
func (d *Document) Delete() {
	if d.deleteSelection() {
		return
	}
	if d.cursor >= len(d.text) {
		return
	}
	d.deleteRange(d.cursor, d.cursor+1)
}

// Clear empties the document.
func (d *Document) Clear() {
	d.SetText("")
}

func (d *Document) deleteSelection() bool {
	r, ok := d.Selection()
	d.selected = false
	if !ok {
		return false
	}
	d.deleteRange(r.Start, r.End)
	return true
}

func (d *Document) deleteRange(start, end int) {
	d.text = append(d.text[:start], d.text[end:]...)
	d.censored.Shift(start, start-end)
	d.cursor = start
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
