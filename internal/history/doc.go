// Package history keeps a file-based record of the codeblocks redcode has
// copied to the clipboard, so an earlier result can be copied again.
//
// Entries are keyed by a SHA-256 hash of the codeblock text. Each entry
// stores the codeblock with a creation timestamp and a TTL (in seconds).
// Expired entries are skipped on read and removed during clear operations.
//
// The default directory is $XDG_CACHE_HOME/redcode (or the OS-appropriate
// equivalent). Only already-censored codeblocks are ever stored.
package history
