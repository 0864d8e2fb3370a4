package journal

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Run status values.
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Run summarizes one apply run.
type Run struct {
	ID         string
	Dir        string
	Mover      string
	Status     string
	Error      string
	StartedAt  time.Time
	FinishedAt *time.Time
	Applied    int
}

// Move is one applied rename within a run.
type Move struct {
	Seq       int
	Source    string
	Target    string
	AppliedAt time.Time
}

// Store persists applied renames in SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the journal database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create journal directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// StartRun records the beginning of an apply run and returns its ID.
func (s *Store) StartRun(ctx context.Context, dir, mover string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, directory, mover, status, started_at) VALUES (?, ?, ?, ?, ?)`,
		id, dir, mover, StatusRunning, timeString(time.Now()),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	return id, nil
}

// RecordMove records one applied rename. Seq is the entry's position in
// the plan, so the journal preserves execution order even when clocks are
// coarse.
func (s *Store) RecordMove(ctx context.Context, runID string, seq int, source, target string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO moves (run_id, seq, source, target, applied_at) VALUES (?, ?, ?, ?, ?)`,
		runID, seq, source, target, timeString(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("insert move: %w", err)
	}
	return nil
}

// FinishRun marks the run completed, or failed when runErr is non-nil.
func (s *Store) FinishRun(ctx context.Context, runID string, runErr error) error {
	status := StatusCompleted
	var detail any
	if runErr != nil {
		status = StatusFailed
		detail = runErr.Error()
	}
	_, err := s.db.ExecContext(ctx,
		`UPDATE runs SET status = ?, error = ?, finished_at = ? WHERE id = ?`,
		status, detail, timeString(time.Now()), runID,
	)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	return nil
}

// Runs returns the most recent runs, newest first. A limit <= 0 returns
// everything.
func (s *Store) Runs(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT r.id, r.directory, r.mover, r.status, COALESCE(r.error, ''),
                r.started_at, r.finished_at,
                (SELECT COUNT(1) FROM moves m WHERE m.run_id = r.id)
         FROM runs r
         ORDER BY r.started_at DESC, r.id DESC
         LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run         Run
			startedRaw  string
			finishedRaw sql.NullString
		)
		if err := rows.Scan(&run.ID, &run.Dir, &run.Mover, &run.Status, &run.Error,
			&startedRaw, &finishedRaw, &run.Applied); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if started, err := parseTimeString(startedRaw); err == nil {
			run.StartedAt = started
		}
		if finishedRaw.Valid {
			if finished, err := parseTimeString(finishedRaw.String); err == nil {
				run.FinishedAt = &finished
			}
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// Moves returns the applied renames of one run in execution order.
func (s *Store) Moves(ctx context.Context, runID string) ([]Move, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT seq, source, target, applied_at FROM moves WHERE run_id = ? ORDER BY seq`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("query moves: %w", err)
	}
	defer rows.Close()

	var moves []Move
	for rows.Next() {
		var (
			mv         Move
			appliedRaw string
		)
		if err := rows.Scan(&mv.Seq, &mv.Source, &mv.Target, &appliedRaw); err != nil {
			return nil, fmt.Errorf("scan move: %w", err)
		}
		if applied, err := parseTimeString(appliedRaw); err == nil {
			mv.AppliedAt = applied
		}
		moves = append(moves, mv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate moves: %w", err)
	}
	return moves, nil
}

func timeString(value time.Time) string {
	return value.UTC().Format(time.RFC3339Nano)
}

func parseTimeString(value string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, value)
}
