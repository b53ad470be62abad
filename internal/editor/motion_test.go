package editor

import "testing"

func TestDocument_Lines(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"", []string{""}},
		{"a", []string{"a"}},
		{"a\nb", []string{"a", "b"}},
		{"a\n", []string{"a", ""}},
	}
	for _, tt := range tests {
		got := New(tt.text).Lines()
		if len(got) != len(tt.want) {
			t.Errorf("Lines(%q) = %q, want %q", tt.text, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Lines(%q)[%d] = %q, want %q", tt.text, i, got[i], tt.want[i])
			}
		}
	}
}

func TestDocument_PositionOffset(t *testing.T) {
	d := New("ab\ncdef\n\ng")
	tests := []struct {
		offset, line, col int
	}{
		{0, 0, 0},
		{2, 0, 2},
		{3, 1, 0},
		{7, 1, 4},
		{8, 2, 0},
		{9, 3, 0},
		{10, 3, 1},
	}
	for _, tt := range tests {
		line, col := d.Position(tt.offset)
		if line != tt.line || col != tt.col {
			t.Errorf("Position(%d) = %d,%d want %d,%d", tt.offset, line, col, tt.line, tt.col)
		}
		if got := d.Offset(tt.line, tt.col); got != tt.offset {
			t.Errorf("Offset(%d,%d) = %d, want %d", tt.line, tt.col, got, tt.offset)
		}
	}
	if got := d.Offset(0, 99); got != 2 {
		t.Errorf("Offset past line end = %d, want 2", got)
	}
	if got := d.Offset(99, 0); got != d.Len() {
		t.Errorf("Offset past last line = %d, want %d", got, d.Len())
	}
}

func TestDocument_Move(t *testing.T) {
	d := New("abcd\nxy\nlonger")
	d.SetCursor(3) // line 0 col 3

	d.Move(Down, false)
	if line, col := d.CursorPos(); line != 1 || col != 2 {
		t.Errorf("after Down = %d,%d want 1,2", line, col)
	}
	d.Move(Down, false)
	if line, col := d.CursorPos(); line != 2 || col != 2 {
		t.Errorf("after second Down = %d,%d want 2,2", line, col)
	}
	d.Move(LineEnd, false)
	if d.Cursor() != d.Len() {
		t.Errorf("LineEnd cursor = %d, want %d", d.Cursor(), d.Len())
	}
	d.Move(LineStart, false)
	if line, col := d.CursorPos(); line != 2 || col != 0 {
		t.Errorf("after LineStart = %d,%d", line, col)
	}
	d.Move(Up, false)
	d.Move(Up, false)
	d.Move(Up, false)
	if line, _ := d.CursorPos(); line != 0 {
		t.Errorf("Up at first line moved to line %d", line)
	}
	d.Move(DocEnd, true)
	r, ok := d.Selection()
	if !ok || r.Start != 0 || r.End != d.Len() {
		t.Errorf("DocEnd selection = %v, %v", r, ok)
	}
	d.Move(DocStart, false)
	if d.Cursor() != 0 {
		t.Errorf("DocStart cursor = %d", d.Cursor())
	}
	d.Move(Left, false)
	if d.Cursor() != 0 {
		t.Errorf("Left at start moved cursor to %d", d.Cursor())
	}
}
