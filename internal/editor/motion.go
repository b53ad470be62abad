package editor

// Lines returns the document split at newlines. A trailing newline yields a
// final empty line.
func (d *Document) Lines() []string {
	lines := []string{}
	start := 0
	for i, r := range d.text {
		if r == '\n' {
			lines = append(lines, string(d.text[start:i]))
			start = i + 1
		}
	}
	return append(lines, string(d.text[start:]))
}

// CursorPos returns the zero-based line and column (in runes) of the cursor.
func (d *Document) CursorPos() (line, col int) {
	return d.Position(d.cursor)
}

// Position converts an offset to a line and column.
func (d *Document) Position(offset int) (line, col int) {
	offset = clamp(offset, 0, len(d.text))
	for _, r := range d.text[:offset] {
		if r == '\n' {
			line++
			col = 0
			continue
		}
		col++
	}
	return line, col
}

// Offset converts a line and column to an offset. Columns past the end of a
// line clamp to the line end; lines past the end clamp to the document end.
func (d *Document) Offset(line, col int) int {
	if line < 0 {
		return 0
	}
	off := 0
	for l := 0; l < line; l++ {
		next := d.lineEnd(off)
		if next >= len(d.text) {
			return len(d.text)
		}
		off = next + 1
	}
	return min(off+max(col, 0), d.lineEnd(off))
}

// lineEnd returns the offset of the newline ending the line containing off,
// or the document length.
func (d *Document) lineEnd(off int) int {
	for i := off; i < len(d.text); i++ {
		if d.text[i] == '\n' {
			return i
		}
	}
	return len(d.text)
}

// Motion is a cursor movement.
type Motion int

// Supported motions.
const (
	Left Motion = iota
	Right
	Up
	Down
	LineStart
	LineEnd
	DocStart
	DocEnd
)

// Move applies m. When extend is true the selection grows from its anchor,
// otherwise any selection is dropped.
func (d *Document) Move(m Motion, extend bool) {
	if extend && !d.selected {
		d.anchor = d.cursor
		d.selected = true
	} else if !extend {
		d.selected = false
	}

	line, col := d.CursorPos()
	switch m {
	case Left:
		d.cursor = max(d.cursor-1, 0)
	case Right:
		d.cursor = min(d.cursor+1, len(d.text))
	case Up:
		if line > 0 {
			d.cursor = d.Offset(line-1, col)
		}
	case Down:
		d.cursor = d.Offset(line+1, col)
	case LineStart:
		d.cursor = d.Offset(line, 0)
	case LineEnd:
		d.cursor = d.lineEnd(d.cursor)
	case DocStart:
		d.cursor = 0
	case DocEnd:
		d.cursor = len(d.text)
	}
}
