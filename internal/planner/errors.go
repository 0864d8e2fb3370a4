package planner

import (
	"fmt"
	"strings"
)

// CollisionError reports targets that more than one source would produce.
// Targets is sorted and free of duplicates.
type CollisionError struct {
	Targets []string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("duplicate rename targets: %s", strings.Join(e.Targets, ", "))
}

// ExistsError reports targets that already name a file in the directory
// snapshot without being one of the plan's own sources. Targets keeps plan
// order.
type ExistsError struct {
	Targets []string
}

func (e *ExistsError) Error() string {
	return fmt.Sprintf("rename targets already exist: %s", strings.Join(e.Targets, ", "))
}

// MoveError reports the single entry whose move failed during execution.
// Applied counts the renames completed before the failure; those stay
// applied.
type MoveError struct {
	Entry   Entry
	Applied int
	Err     error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("move %q to %q: %v", e.Entry.Source, e.Entry.Target, e.Err)
}

func (e *MoveError) Unwrap() error { return e.Err }
