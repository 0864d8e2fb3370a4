// Package deps reports the availability of external binaries. The only
// binary reframe ever executes is git, and only for git-aware moves, so
// the requirement set is small and entirely optional for plain renames.
package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement defines an external binary reframe may call.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a requirement.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// GitCommand is the binary used for git-aware moves.
const GitCommand = "git"

// Defaults returns the requirements of a standard installation.
func Defaults() []Requirement {
	return []Requirement{
		{
			Name:        "Git",
			Command:     GitCommand,
			Description: "records renames as git mv when apply runs with --git",
			Optional:    true,
		},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}

// RequireGit reports an error when git is missing from PATH. Apply calls
// it before planning so a git-aware run fails before any filesystem work.
func RequireGit() error {
	if _, err := exec.LookPath(GitCommand); err != nil {
		return fmt.Errorf("git-aware moves need %s on PATH: %w", GitCommand, err)
	}
	return nil
}
