// Package app wires the formatter, settings store, clipboard, file picker and
// history into the named commands the front-ends invoke: Done, Open, Clear
// and Censor.
//
// All state lives on an [App] value built by the caller. Front-ends hold a
// *App and an *editor.Document and never reach into settings or the
// clipboard directly.
package app
