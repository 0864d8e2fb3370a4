package frame

import "fmt"

// TargetName builds the canonical machine name for a descriptor:
// ckt-<family>-<size>-<variant>-<tone> plus the scheme's extension, all
// lowercase. The same descriptor always yields the same name; renames stay
// reproducible across runs because nothing here depends on the filesystem.
func (s Scheme) TargetName(d Descriptor) string {
	return fmt.Sprintf("%s-%s-%s-%s-%s.%s", Prefix, d.Family, d.Size, d.Variant, d.Tone, s.ext)
}
