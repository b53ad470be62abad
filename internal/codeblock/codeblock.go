package codeblock

import (
	"strings"

	"github.com/dshills/redcode/internal/censor"
)

// Indent prefixes every line of a codeblock.
const Indent = "    "

// Mask replaces each censored rune.
const Mask = '█'

// Format masks the censored spans of text and returns it as a codeblock.
func Format(text string, censored censor.Set) string {
	text = censored.Apply(text, Mask)

	var b strings.Builder
	b.Grow(len(text) + 2*len(Indent) + 2)
	b.WriteString("\n")
	b.WriteString(Indent)
	for _, c := range text {
		switch c {
		case '\n':
			b.WriteRune(c)
			b.WriteString(Indent)
		case '\t':
			b.WriteString(Indent)
		default:
			b.WriteRune(c)
		}
	}
	b.WriteString("\n")
	return b.String()
}

// FormatString formats text without censoring anything.
func FormatString(text string) string {
	return Format(text, censor.Set{})
}
