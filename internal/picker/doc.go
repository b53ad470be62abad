// Package picker asks the user for a file to open.
//
// [Native] shows the platform open dialog. [Fixed] returns a preset path and
// is used when the path is already known, as with `redcode open <file>`.
// A dismissed dialog yields [ErrCancelled], which callers treat as a no-op.
package picker
