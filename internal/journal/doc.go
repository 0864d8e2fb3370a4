// Package journal persists applied renames in SQLite so an operator can
// reconstruct what a past apply run changed, including a run that aborted
// partway.
//
// The journal records outcomes only. Plans are never written: a dry run
// leaves no trace, and a run that fails validation leaves no trace either.
// Writes are best-effort from the caller's point of view; a journal error
// must never abort a rename run that is otherwise succeeding.
//
// Schema changes bump the version in schema.go; the journal refuses to
// open a database with a different version.
package journal
