// Package cli wires together the Cobra command tree for the redcode binary.
//
// The root command starts the terminal editor. Subcommands format files or
// stdin without the editor (format), open a file headless (open), and manage
// the settings file (settings) and clipboard history (history).
package cli
