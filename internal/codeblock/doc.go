// Package codeblock turns free text into an indented markdown codeblock.
//
// Every output line starts with [Indent], tabs are expanded to [Indent], and
// the block is preceded by a blank line and followed by a single newline so it
// can be pasted after arbitrary content. Censored spans are masked with
// [Mask] before indentation is applied.
//
// Formatting is a single-pass transform: running it on its own output
// indents the text a second time.
package codeblock
