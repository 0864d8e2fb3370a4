package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"reframe/internal/journal"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool
	var runID string
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded apply runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.Journal.Enabled {
				return errors.New("journal is disabled in configuration")
			}
			store, err := journal.Open(cfg.Journal.Path)
			if err != nil {
				return fmt.Errorf("open journal: %w", err)
			}
			defer store.Close()

			if id := strings.TrimSpace(runID); id != "" {
				return showRun(cmd, store, id, jsonOut)
			}
			return listRuns(cmd, store, limit, jsonOut)
		},
	}

	cmd.Flags().StringVar(&runID, "run", "", "Show the moves of one run (full or prefix ID)")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum runs to list (0 lists everything)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit history as JSON")
	return cmd
}

func listRuns(cmd *cobra.Command, store *journal.Store, limit int, jsonOut bool) error {
	runs, err := store.Runs(cmd.Context(), limit)
	if err != nil {
		return err
	}
	if jsonOut {
		items := make([]jsonRun, 0, len(runs))
		for _, run := range runs {
			items = append(items, runJSON(run))
		}
		return writeJSON(cmd, map[string]any{"runs": items})
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}
	fmt.Fprintln(out, renderTable(out,
		[]string{"RUN", "STARTED", "STATUS", "MOVES", "MOVER", "DIRECTORY"},
		runRows(runs), 3))
	return nil
}

// showRun resolves id against the recorded runs, accepting any unique
// prefix, and prints that run's moves.
func showRun(cmd *cobra.Command, store *journal.Store, id string, jsonOut bool) error {
	runs, err := store.Runs(cmd.Context(), 0)
	if err != nil {
		return err
	}

	var matches []journal.Run
	for _, run := range runs {
		if run.ID == id {
			matches = []journal.Run{run}
			break
		}
		if strings.HasPrefix(run.ID, id) {
			matches = append(matches, run)
		}
	}
	if len(matches) == 0 {
		return fmt.Errorf("run %q not found", id)
	}
	if len(matches) > 1 {
		return fmt.Errorf("run ID %q is ambiguous (%d matches)", id, len(matches))
	}
	run := matches[0]

	moves, err := store.Moves(cmd.Context(), run.ID)
	if err != nil {
		return err
	}

	if jsonOut {
		items := make([]jsonMove, 0, len(moves))
		for _, mv := range moves {
			items = append(items, moveJSON(mv))
		}
		return writeJSON(cmd, map[string]any{"run": runJSON(run), "moves": items})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Run %s: %s, %d moves, directory %s\n",
		shortRunID(run.ID), statusLabel(run.Status), len(moves), run.Dir)
	if run.Error != "" {
		fmt.Fprintf(out, "Error: %s\n", run.Error)
	}
	if len(moves) == 0 {
		fmt.Fprintln(out, "No moves were applied.")
		return nil
	}
	fmt.Fprintln(out, renderTable(out,
		[]string{"SEQ", "SOURCE", "TARGET", "APPLIED"},
		moveRows(moves), 0))
	return nil
}

type jsonRun struct {
	ID         string `json:"id"`
	Directory  string `json:"directory"`
	Mover      string `json:"mover"`
	Status     string `json:"status"`
	Error      string `json:"error,omitempty"`
	StartedAt  string `json:"started_at"`
	FinishedAt string `json:"finished_at,omitempty"`
	Moves      int    `json:"moves"`
}

func runJSON(run journal.Run) jsonRun {
	item := jsonRun{
		ID:        run.ID,
		Directory: run.Dir,
		Mover:     run.Mover,
		Status:    run.Status,
		Error:     run.Error,
		StartedAt: run.StartedAt.UTC().Format(time.RFC3339),
		Moves:     run.Applied,
	}
	if run.FinishedAt != nil {
		item.FinishedAt = run.FinishedAt.UTC().Format(time.RFC3339)
	}
	return item
}

type jsonMove struct {
	Seq       int    `json:"seq"`
	Source    string `json:"source"`
	Target    string `json:"target"`
	AppliedAt string `json:"applied_at"`
}

func moveJSON(mv journal.Move) jsonMove {
	return jsonMove{
		Seq:       mv.Seq,
		Source:    mv.Source,
		Target:    mv.Target,
		AppliedAt: mv.AppliedAt.UTC().Format(time.RFC3339),
	}
}
