// Package scan lists the candidate files for one rename run.
//
// A run works on a snapshot: the directory is read exactly once, and both
// candidate selection and the planner's does-the-target-already-exist check
// are answered from that single listing. Changes made to the directory by
// another process after the snapshot are not re-checked; the tool assumes
// a single operator.
package scan

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Snapshot is one directory listing, reduced to the base names that carry
// the target extension. Names are sorted lexicographically so every run
// over the same directory processes files in the same order.
type Snapshot struct {
	Dir   string
	Names []string
	Sizes map[string]int64
}

// Take lists regular files directly inside dir whose names end,
// case-insensitively, in ".<ext>". Subdirectories are never entered.
func Take(dir, ext string) (Snapshot, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Snapshot{}, fmt.Errorf("list %s: %w", dir, err)
	}

	suffix := "." + strings.ToLower(strings.TrimPrefix(ext, "."))
	var names []string
	sizes := make(map[string]int64)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if len(name) < len(suffix) {
			continue
		}
		if !strings.EqualFold(name[len(name)-len(suffix):], suffix) {
			continue
		}
		names = append(names, name)
		if info, err := entry.Info(); err == nil {
			sizes[name] = info.Size()
		}
	}
	sort.Strings(names)

	return Snapshot{Dir: dir, Names: names, Sizes: sizes}, nil
}

// Contains reports whether name is part of the snapshot listing.
func (s Snapshot) Contains(name string) bool {
	i := sort.SearchStrings(s.Names, name)
	return i < len(s.Names) && s.Names[i] == name
}

// Size returns the recorded byte size for name, or zero when the name is
// not part of the snapshot.
func (s Snapshot) Size(name string) int64 {
	return s.Sizes[name]
}
