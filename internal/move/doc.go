// Package move performs single-file renames inside one directory.
//
// Movers operate on base names relative to a directory so callers never
// assemble paths themselves. Two implementations exist: a plain
// filesystem rename and a git-aware variant that shells out to git mv so
// the rename is recorded as such in the index.
package move
