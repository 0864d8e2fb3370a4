package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"reframe/internal/deps"
	"reframe/internal/journal"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report configuration, binaries, and journal health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := isTerminal(out)

			for _, line := range renderSectionHeader("Configuration", colorize) {
				fmt.Fprintln(out, line)
			}
			path, exists := ctx.configSource()
			if exists {
				fmt.Fprintln(out, renderStatusLine("Config", statusOK, path, colorize))
			} else {
				fmt.Fprintln(out, renderStatusLine("Config", statusInfo,
					fmt.Sprintf("defaults in use (no file at %s)", path), colorize))
			}

			fmt.Fprintln(out)
			for _, line := range renderSectionHeader("Binaries", colorize) {
				fmt.Fprintln(out, line)
			}
			for _, status := range deps.CheckBinaries(deps.Defaults()) {
				kind := statusOK
				message := status.Description
				if !status.Available {
					kind = statusError
					if status.Optional {
						kind = statusWarn
					}
					message = status.Detail
				}
				fmt.Fprintln(out, renderStatusLine(status.Name, kind, message, colorize))
			}

			fmt.Fprintln(out)
			for _, line := range renderSectionHeader("Journal", colorize) {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintln(out, journalStatusLine(cmd, cfg.Journal.Enabled, cfg.Journal.Path, colorize))
			return nil
		},
	}
}

// journalStatusLine opens the journal to prove it is usable and reports
// how much history it holds.
func journalStatusLine(cmd *cobra.Command, enabled bool, path string, colorize bool) string {
	if !enabled {
		return renderStatusLine("Journal", statusInfo, "disabled in configuration", colorize)
	}
	store, err := journal.Open(path)
	if err != nil {
		return renderStatusLine("Journal", statusError, err.Error(), colorize)
	}
	defer store.Close()

	runs, err := store.Runs(cmd.Context(), 0)
	if err != nil {
		return renderStatusLine("Journal", statusError, err.Error(), colorize)
	}
	return renderStatusLine("Journal", statusOK,
		fmt.Sprintf("%d runs recorded at %s", len(runs), store.Path()), colorize)
}
