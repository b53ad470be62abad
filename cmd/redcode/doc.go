// Redcode formats text as a markdown codeblock and copies it to the clipboard.
//
// Every line is indented by four spaces, tabs become four spaces, and the
// block is preceded by a blank line so it renders as code when pasted into a
// markdown editor. Selected spans can be censored with a block character
// first.
//
// Usage:
//
//	redcode                         # open the terminal editor
//	redcode notes.txt               # open the editor with a file loaded
//	redcode format < main.go        # copy stdin as a codeblock
//	redcode format --print file.py  # print instead of copying
//	redcode format --censor 4:12    # mask runes 4 through 11
//	redcode open --dialog           # pick a file in the system dialog
//	redcode settings show           # print the persisted settings
//	redcode format --history < x.md # also keep the codeblock in the history
//	redcode history list            # list codeblocks kept with --history
package main
