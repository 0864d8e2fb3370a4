// Package frame parses informal frame-image filenames into structured
// descriptors and builds the canonical machine names for them.
//
// The informal convention is human-authored and loose about casing and
// spacing, for example:
//
//	"CKT template 90x90 cropped light.png"
//	"CKT template small close 60x50 dark.png"
//
// Parsing either yields a fully populated Descriptor or nothing; there are
// no partial results. The canonical output name is
// ckt-<family>-<size>-<variant>-<tone>.<ext>, all lowercase.
package frame
