package planner

import (
	"sort"

	"reframe/internal/frame"
	"reframe/internal/scan"
)

// Entry is one pending rename. Source and Target are base names within the
// plan's directory.
type Entry struct {
	Source string
	Target string
}

// Plan is the validated, ordered set of renames for one run. Skipped lists
// the snapshot names that did not match the naming convention; they are
// reported but never touched.
type Plan struct {
	Dir     string
	Entries []Entry
	Skipped []string
}

// Build turns a directory snapshot into a validated plan. Candidates are
// processed in lexicographic order so the plan is reproducible for the
// same input set. Names that fail to parse are skipped, entries whose
// target equals their source are dropped, and the surviving set must be
// free of duplicate targets and of targets already present in the
// snapshot. Build never mutates the filesystem; a validation failure
// returns a nil plan and one of CollisionError or ExistsError.
func Build(snap scan.Snapshot, scheme frame.Scheme) (*Plan, error) {
	names := append([]string(nil), snap.Names...)
	sort.Strings(names)

	plan := &Plan{Dir: snap.Dir}
	for _, name := range names {
		desc, ok := scheme.Parse(name)
		if !ok {
			plan.Skipped = append(plan.Skipped, name)
			continue
		}
		target := scheme.TargetName(desc)
		if target == name {
			continue
		}
		plan.Entries = append(plan.Entries, Entry{Source: name, Target: target})
	}

	if dupes := duplicateTargets(plan.Entries); len(dupes) > 0 {
		return nil, &CollisionError{Targets: dupes}
	}
	if existing := existingTargets(plan.Entries, snap); len(existing) > 0 {
		return nil, &ExistsError{Targets: existing}
	}
	return plan, nil
}

// duplicateTargets returns every target claimed by more than one entry,
// sorted, each named once.
func duplicateTargets(entries []Entry) []string {
	counts := make(map[string]int, len(entries))
	for _, entry := range entries {
		counts[entry.Target]++
	}
	var dupes []string
	for target, n := range counts {
		if n > 1 {
			dupes = append(dupes, target)
		}
	}
	sort.Strings(dupes)
	return dupes
}

// existingTargets returns every target that names a file in the snapshot
// without being one of the plan's own sources. The snapshot is the only
// existence oracle: the directory is not re-read between validation and
// execution.
func existingTargets(entries []Entry, snap scan.Snapshot) []string {
	sources := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		sources[entry.Source] = struct{}{}
	}
	var existing []string
	for _, entry := range entries {
		if !snap.Contains(entry.Target) {
			continue
		}
		if _, ok := sources[entry.Target]; ok {
			continue
		}
		existing = append(existing, entry.Target)
	}
	return existing
}
