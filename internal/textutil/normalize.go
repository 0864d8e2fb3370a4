package textutil

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// CollapseSpace rewrites every run of Unicode whitespace as a single space
// and trims leading and trailing whitespace. The empty string and
// whitespace-only strings collapse to "".
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NFC returns s in Unicode normalization form C. Filenames created on
// macOS commonly arrive decomposed (NFD); folding to NFC first makes the
// same visible name match and compare identically regardless of origin.
func NFC(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}
