package planner

import (
	"context"

	"reframe/internal/move"
)

// Execute applies the plan strictly in order using the given mover. The
// first failing move aborts the run with a MoveError; renames completed
// before the failure are not rolled back. The applied callback, when
// non-nil, observes each entry immediately after its move succeeds.
func (p *Plan) Execute(ctx context.Context, mover move.Mover, applied func(Entry)) error {
	for i, entry := range p.Entries {
		if err := mover.Move(ctx, p.Dir, entry.Source, entry.Target); err != nil {
			return &MoveError{Entry: entry, Applied: i, Err: err}
		}
		if applied != nil {
			applied(entry)
		}
	}
	return nil
}
