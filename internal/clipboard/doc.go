// Package clipboard delivers finished codeblocks. [System] writes to the
// desktop clipboard, replacing whatever it held; [Stream] writes to any
// io.Writer for piping and tests.
package clipboard
