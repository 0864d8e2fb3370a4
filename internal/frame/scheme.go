package frame

import (
	"fmt"
	"regexp"
	"strings"
)

// Prefix is the fixed leading token of every canonical name. It doubles as
// the parser's family fallback: names starting with this word that declare
// no family are read as templates.
const Prefix = "ckt"

// reFamilyName validates configured family names: they are matched as whole
// words and embedded in target names, so only lowercase word characters work.
var reFamilyName = regexp.MustCompile(`^[a-z0-9]+$`)

type extraFamily struct {
	name    Family
	pattern *regexp.Regexp
}

// Scheme is the naming convention for one run: the target file extension
// plus any families admitted beyond the built-in template and aquarell.
// It is passed explicitly to everything that parses or names files; there
// is no package-level convention state.
type Scheme struct {
	ext    string // without dot, lowercase
	extras []extraFamily
}

// New builds a Scheme for the given extension and extra family names.
// The extension may carry a leading dot and any casing; family names must
// be lowercase word tokens. Names duplicating a built-in family are ignored.
func New(extension string, extraFamilies []string) (Scheme, error) {
	ext := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(extension), "."))
	if ext == "" {
		return Scheme{}, fmt.Errorf("scheme: extension must not be empty")
	}
	if !reFamilyName.MatchString(ext) {
		return Scheme{}, fmt.Errorf("scheme: invalid extension %q", extension)
	}

	s := Scheme{ext: ext}
	for _, name := range extraFamilies {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || Family(name) == FamilyTemplate || Family(name) == FamilyAquarell {
			continue
		}
		if !reFamilyName.MatchString(name) {
			return Scheme{}, fmt.Errorf("scheme: invalid family name %q", name)
		}
		s.extras = append(s.extras, extraFamily{
			name:    Family(name),
			pattern: regexp.MustCompile(`(?i)\b` + name + `\b`),
		})
	}
	return s, nil
}

// Default returns the stock convention: png frames, built-in families only.
func Default() Scheme {
	s, err := New("png", nil)
	if err != nil {
		panic(err) // the stock convention always builds
	}
	return s
}

// Extension returns the target file extension without the dot, lowercase.
func (s Scheme) Extension() string {
	return s.ext
}
