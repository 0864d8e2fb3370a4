package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"reframe/internal/config"
	"reframe/internal/deps"
	"reframe/internal/journal"
	"reframe/internal/logging"
	"reframe/internal/move"
	"reframe/internal/planner"
	"reframe/internal/runlock"
	"reframe/internal/scan"
)

func newApplyCommand(ctx *commandContext) *cobra.Command {
	var useGit bool

	cmd := &cobra.Command{
		Use:   "apply [dir]",
		Short: "Validate and perform the renames in a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			scheme, err := ctx.scheme()
			if err != nil {
				return err
			}
			dir, err := resolveDir(args)
			if err != nil {
				return err
			}

			logger := logging.WithComponent(ctx.logger(cmd), "apply")

			var mover move.Mover = move.Rename{}
			if useGit {
				if err := deps.RequireGit(); err != nil {
					return err
				}
				mover = move.Git{}
			}

			lock := runlock.New(dir)
			if err := lock.Acquire(); err != nil {
				return err
			}
			defer func() {
				if err := lock.Release(); err != nil {
					logger.Warn("release run lock", logging.Error(err))
				}
			}()

			snap, err := scan.Take(dir, cfg.Scan.Extension)
			if err != nil {
				return err
			}
			p, err := planner.Build(snap, scheme)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(p.Entries) == 0 {
				fmt.Fprintln(out, "No matching files found to rename.")
				return nil
			}

			fmt.Fprintln(out, "Applying renames:")
			fmt.Fprintln(out, renderTable(out, []string{"SOURCE", "TARGET", "SIZE"}, planRows(p, snap), 2))

			rec := newRunRecorder(cmd.Context(), cfg, logger, dir, mover.Name())
			defer rec.close()

			execErr := p.Execute(cmd.Context(), mover, func(entry planner.Entry) {
				logger.Info("renamed",
					logging.String("source", entry.Source),
					logging.String("target", entry.Target))
				rec.record(entry)
			})
			rec.finish(execErr)

			if execErr != nil {
				var moveErr *planner.MoveError
				if errors.As(execErr, &moveErr) {
					fmt.Fprintf(cmd.ErrOrStderr(),
						"%d of %d renames were applied before the failure; they stay in place.\n",
						moveErr.Applied, len(p.Entries))
				}
				return execErr
			}

			fmt.Fprintf(out, "Renamed %d files.\n", len(p.Entries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&useGit, "git", false, "Record renames with git mv (for files tracked in a repository)")
	return cmd
}

// runRecorder journals one apply run. Journaling is best effort: any
// failure is logged as a warning and never interferes with the renames.
type runRecorder struct {
	ctx    context.Context
	logger *slog.Logger
	store  *journal.Store
	runID  string
	seq    int
}

func newRunRecorder(ctx context.Context, cfg *config.Config, logger *slog.Logger, dir, mover string) *runRecorder {
	rec := &runRecorder{ctx: ctx, logger: logger}
	if !cfg.Journal.Enabled {
		return rec
	}
	store, err := journal.Open(cfg.Journal.Path)
	if err != nil {
		logger.Warn("journal unavailable", logging.Error(err))
		return rec
	}
	runID, err := store.StartRun(ctx, dir, mover)
	if err != nil {
		logger.Warn("journal run not recorded", logging.Error(err))
		_ = store.Close()
		return rec
	}
	rec.store = store
	rec.runID = runID
	return rec
}

// record journals one applied rename. Entries arrive in plan order, so
// the running counter doubles as the plan position.
func (r *runRecorder) record(entry planner.Entry) {
	if r.store == nil {
		return
	}
	if err := r.store.RecordMove(r.ctx, r.runID, r.seq, entry.Source, entry.Target); err != nil {
		r.logger.Warn("journal move not recorded", logging.Error(err))
	}
	r.seq++
}

func (r *runRecorder) finish(execErr error) {
	if r.store == nil {
		return
	}
	if err := r.store.FinishRun(r.ctx, r.runID, execErr); err != nil {
		r.logger.Warn("journal run not finalized", logging.Error(err))
	}
}

func (r *runRecorder) close() {
	if r.store == nil {
		return
	}
	if err := r.store.Close(); err != nil {
		r.logger.Warn("close journal", logging.Error(err))
	}
}
