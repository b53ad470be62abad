package codeblock

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/dshills/redcode/internal/censor"
)

func TestFormatString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "\n    \n"},
		{"single line", "hello", "\n    hello\n"},
		{"multi line", "line1\nline2", "\n    line1\n    line2\n"},
		{"tab expanded", "a\tb", "\n    a    b\n"},
		{"leading tab", "\tx", "\n        x\n"},
		{"trailing newline kept", "a\n", "\n    a\n    \n"},
		{"blank lines indented", "a\n\nb", "\n    a\n    \n    b\n"},
		{"only whitespace controls", "\t\n\t", "\n        \n        \n"},
		{"no trimming", "  x  ", "\n      x  \n"},
		{"markdown left alone", "# *not* `escaped`", "\n    # *not* `escaped`\n"},
		{"carriage return untouched", "a\r\nb", "\n    a\r\n    b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatString(tt.input); got != tt.want {
				t.Errorf("FormatString(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormat_MatchesLineIndentRule(t *testing.T) {
	inputs := []string{"", "x", "func main() {\n}\n", "a\n\n\nb", "ünïcode\nlines"}
	for _, s := range inputs {
		want := "\n" + Indent + strings.ReplaceAll(s, "\n", "\n"+Indent) + "\n"
		if got := FormatString(s); got != want {
			t.Errorf("FormatString(%q) = %q, want %q", s, got, want)
		}
	}
}

func TestFormat_Censored(t *testing.T) {
	got := Format("secret", censor.NewSet(censor.Range{Start: 0, End: 6}))
	want := "\n    ██████\n"
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
	run := strings.TrimSuffix(strings.TrimPrefix(got, "\n"+Indent), "\n")
	if n := utf8.RuneCountInString(run); n != 6 {
		t.Errorf("masked run has %d runes, want 6", n)
	}
}

func TestFormat_CensorAppliedBeforeIndent(t *testing.T) {
	// Offsets refer to the raw text, so the span crossing the newline masks
	// the newline itself rather than shifting onto the inserted indent.
	text := "ab\tc\nde"
	got := Format(text, censor.NewSet(censor.Range{Start: 1, End: 2}, censor.Range{Start: 3, End: 6}))
	want := "\n    a█    ███e\n"
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormat_CensorRangesAnyOrder(t *testing.T) {
	text := "user=alice pass=hunter2"
	a := censor.NewSet(censor.Range{Start: 5, End: 10}, censor.Range{Start: 16, End: 23})
	b := censor.NewSet(censor.Range{Start: 16, End: 23}, censor.Range{Start: 5, End: 10})
	if Format(text, a) != Format(text, b) {
		t.Error("range insertion order changed the result")
	}
	want := "\n    user=█████ pass=███████\n"
	if got := Format(text, a); got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormat_CensorPastEndClamped(t *testing.T) {
	got := Format("abc", censor.NewSet(censor.Range{Start: 2, End: 50}))
	if want := "\n    ab█\n"; got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormat_NotIdempotent(t *testing.T) {
	// Re-formatting indents again. This is expected behavior.
	for _, s := range []string{"x", "a\nb", "\t"} {
		once := FormatString(s)
		twice := FormatString(once)
		if once == twice {
			t.Errorf("FormatString(FormatString(%q)) unexpectedly equals a single pass", s)
		}
		if !strings.Contains(twice, Indent+Indent) {
			t.Errorf("second pass %q is not double-indented", twice)
		}
	}
}

func TestFormat_DoesNotMutateSet(t *testing.T) {
	set := censor.NewSet(censor.Range{Start: 0, End: 2})
	_ = Format("abcd", set)
	if set.Len() != 1 {
		t.Errorf("set Len = %d after Format, want 1", set.Len())
	}
}
