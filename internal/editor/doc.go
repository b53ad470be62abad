// Package editor holds the text being prepared for the clipboard.
//
// A [Document] is a rune buffer with a cursor, an optional selection anchor
// and the censor set. Edits keep the censor set aligned with the text, so a
// censored span follows its characters as text is typed or removed around
// it. The package has no knowledge of any screen; the tui package renders a
// Document and translates keys into its operations.
package editor
