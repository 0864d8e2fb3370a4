package main

import (
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"reframe/internal/journal"
	"reframe/internal/planner"
	"reframe/internal/scan"
)

// planRows renders plan entries as table rows. Sizes come from the run's
// snapshot, the same listing the plan was validated against.
func planRows(p *planner.Plan, snap scan.Snapshot) [][]string {
	rows := make([][]string, 0, len(p.Entries))
	for _, entry := range p.Entries {
		rows = append(rows, []string{
			entry.Source,
			entry.Target,
			humanize.IBytes(uint64(snap.Size(entry.Source))),
		})
	}
	return rows
}

func runRows(runs []journal.Run) [][]string {
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, []string{
			shortRunID(run.ID),
			formatDisplayTime(run.StartedAt),
			statusLabel(run.Status),
			strconv.Itoa(run.Applied),
			run.Mover,
			run.Dir,
		})
	}
	return rows
}

func moveRows(moves []journal.Move) [][]string {
	rows := make([][]string, 0, len(moves))
	for _, mv := range moves {
		rows = append(rows, []string{
			strconv.Itoa(mv.Seq),
			mv.Source,
			mv.Target,
			formatClockTime(mv.AppliedAt),
		})
	}
	return rows
}

func formatDisplayTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02 15:04")
}

func formatClockTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("15:04:05")
}

// shortRunID trims a UUID to its first block for display. Full IDs stay
// accepted wherever a run is looked up.
func shortRunID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

func statusLabel(status string) string {
	if status == "" {
		return ""
	}
	return strings.ToUpper(status[:1]) + status[1:]
}
