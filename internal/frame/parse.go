package frame

import (
	"regexp"
	"strings"

	"reframe/internal/textutil"
)

// Matching patterns for the informal convention. Family and variant words
// must appear as whole words so that, say, "aquarelle" declares nothing.
var (
	reTone     = regexp.MustCompile(`(?i)\s+(light|dark)$`)
	reSize     = regexp.MustCompile(`(?i)\d{2,4}x\d{2,4}`)
	reTemplate = regexp.MustCompile(`(?i)\btemplate\b`)
	reAquarell = regexp.MustCompile(`(?i)\baquarell\b`)
	rePrefix   = regexp.MustCompile(`(?i)^` + Prefix + `\b`)

	reCropped    = regexp.MustCompile(`(?i)\bcropped\b`)
	reSmallClose = regexp.MustCompile(`(?i)\bsmall close\b`)
	reSmallFar   = regexp.MustCompile(`(?i)\bsmall far\b`)
)

// Parse reads one filename against the scheme. It reports ok=false whenever
// any step of the convention is missing; a returned Descriptor is always
// fully populated. Parse is a pure function of its input: no filesystem
// access, no state.
//
// The pipeline, each step failing closed:
// extension suffix, whitespace collapse, trailing tone token, WxH size
// anywhere in the remainder, family word (with the ckt-prefix fallback),
// then the variant words.
func (s Scheme) Parse(name string) (Descriptor, bool) {
	base, ok := s.stripExtension(textutil.NFC(name))
	if !ok {
		return Descriptor{}, false
	}
	base = textutil.CollapseSpace(base)

	tone, base, ok := takeTone(base)
	if !ok {
		return Descriptor{}, false
	}
	size, ok := findSize(base)
	if !ok {
		return Descriptor{}, false
	}
	family, ok := s.findFamily(base)
	if !ok {
		return Descriptor{}, false
	}

	return Descriptor{
		OriginalName: name,
		Family:       family,
		Size:         size,
		Variant:      findVariant(base),
		Tone:         tone,
	}, true
}

// stripExtension removes the scheme's extension suffix, case-insensitively.
func (s Scheme) stripExtension(name string) (string, bool) {
	suffix := "." + s.ext
	if len(name) < len(suffix) {
		return "", false
	}
	if !strings.EqualFold(name[len(name)-len(suffix):], suffix) {
		return "", false
	}
	return name[:len(name)-len(suffix)], true
}

// takeTone matches the trailing light/dark token, which must be preceded by
// whitespace, and returns the tone plus the base with the token removed.
// Canonical names never re-parse precisely because they contain no
// whitespace before the tone.
func takeTone(base string) (Tone, string, bool) {
	m := reTone.FindStringSubmatchIndex(base)
	if m == nil {
		return "", "", false
	}
	tone := Tone(strings.ToLower(base[m[2]:m[3]]))
	return tone, base[:m[0]], true
}

// findSize returns the first WxH token in the remaining base, lowercased.
func findSize(base string) (string, bool) {
	m := reSize.FindString(base)
	if m == "" {
		return "", false
	}
	return strings.ToLower(m), true
}

// findFamily resolves the family in declaration order: the built-in words,
// then configured extras, then the fallback that a name starting with the
// ckt prefix but declaring no family is a template.
func (s Scheme) findFamily(base string) (Family, bool) {
	switch {
	case reTemplate.MatchString(base):
		return FamilyTemplate, true
	case reAquarell.MatchString(base):
		return FamilyAquarell, true
	}
	for _, extra := range s.extras {
		if extra.pattern.MatchString(base) {
			return extra.name, true
		}
	}
	if rePrefix.MatchString(base) {
		return FamilyTemplate, true
	}
	return "", false
}

// findVariant defaults to full. The first matching branch wins, so a name
// carrying both "cropped" and a small-phrase reads as crop. "small far"
// maps to the same variant as the default but stays its own branch so the
// precedence over later phrases holds.
func findVariant(base string) Variant {
	switch {
	case reCropped.MatchString(base):
		return VariantCrop
	case reSmallClose.MatchString(base):
		return VariantClose
	case reSmallFar.MatchString(base):
		return VariantFull
	}
	return VariantFull
}
