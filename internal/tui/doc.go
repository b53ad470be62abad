// Package tui is the terminal front-end of redcode.
//
// It draws an [editor.Document] on a tcell screen and maps keys to the
// commands of [app.App]:
//
//	Ctrl+O  open a file          Ctrl+K  censor the selection
//	Ctrl+L  clear the editor     Ctrl+D  copy as codeblock
//	Ctrl+A  select all           Ctrl+Q  quit (also Esc)
//
// Shift with the arrow, Home and End keys extends the selection. Censored
// text is drawn reversed; notifications replace the help line until the next
// key press.
package tui
