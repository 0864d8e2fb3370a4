// Package textutil provides the text normalization helpers shared by
// filename parsing: whitespace collapsing and Unicode form folding.
package textutil
