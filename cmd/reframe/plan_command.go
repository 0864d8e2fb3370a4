package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"reframe/internal/logging"
	"reframe/internal/planner"
	"reframe/internal/scan"
)

func newPlanCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "plan [dir]",
		Short: "Preview the renames a directory would receive",
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

			logger := logging.WithComponent(ctx.logger(cmd), "plan")

			snap, err := scan.Take(dir, cfg.Scan.Extension)
			if err != nil {
				return err
			}
			p, err := planner.Build(snap, scheme)
			if err != nil {
				return err
			}
			logger.Debug("plan built",
				logging.String("dir", dir),
				logging.Int("entries", len(p.Entries)),
				logging.Int("skipped", len(p.Skipped)))

			if jsonOut {
				return writeJSON(cmd, planJSON(p, snap))
			}

			out := cmd.OutOrStdout()
			if len(p.Entries) == 0 {
				fmt.Fprintln(out, "No matching files found to rename.")
				return nil
			}
			fmt.Fprintln(out, "Proposed renames:")
			fmt.Fprintln(out, renderTable(out, []string{"SOURCE", "TARGET", "SIZE"}, planRows(p, snap), 2))
			if len(p.Skipped) > 0 {
				fmt.Fprintf(out, "Skipped %d files that do not match the naming convention.\n", len(p.Skipped))
			}
			fmt.Fprintf(out, "%d renames pending. Run `reframe apply` to perform them.\n", len(p.Entries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the plan as JSON")
	return cmd
}

func planJSON(p *planner.Plan, snap scan.Snapshot) map[string]any {
	type jsonEntry struct {
		Source    string `json:"source"`
		Target    string `json:"target"`
		SizeBytes int64  `json:"size_bytes"`
	}
	entries := make([]jsonEntry, 0, len(p.Entries))
	for _, entry := range p.Entries {
		entries = append(entries, jsonEntry{
			Source:    entry.Source,
			Target:    entry.Target,
			SizeBytes: snap.Size(entry.Source),
		})
	}
	skipped := p.Skipped
	if skipped == nil {
		skipped = []string{}
	}
	return map[string]any{
		"directory": p.Dir,
		"entries":   entries,
		"skipped":   skipped,
	}
}
