package move

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

var commandContext = exec.CommandContext

// Mover renames a single file inside dir. Implementations must treat from
// and to as base names, never paths.
type Mover interface {
	// Move renames dir/from to dir/to.
	Move(ctx context.Context, dir, from, to string) error
	// Name identifies the mover in logs and plan output.
	Name() string
}

// Rename moves files with os.Rename. Source and target share a directory,
// so cross-device fallbacks are unnecessary.
type Rename struct{}

// Move implements Mover.
func (Rename) Move(_ context.Context, dir, from, to string) error {
	if err := validateNames(from, to); err != nil {
		return err
	}
	if err := os.Rename(filepath.Join(dir, from), filepath.Join(dir, to)); err != nil {
		return fmt.Errorf("rename %s: %w", from, err)
	}
	return nil
}

// Name implements Mover.
func (Rename) Name() string { return "rename" }

// Git moves files with git mv so history follows the rename. The working
// directory of the git invocation is the target directory itself, which
// keeps the arguments as bare base names.
type Git struct {
	// Binary overrides the git executable name. Empty means "git".
	Binary string
}

// Move implements Mover.
func (g Git) Move(ctx context.Context, dir, from, to string) error {
	if err := validateNames(from, to); err != nil {
		return err
	}
	binary := g.Binary
	if binary == "" {
		binary = "git"
	}
	cmd := commandContext(ctx, binary, "mv", "--", from, to) //nolint:gosec
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		detail := strings.TrimSpace(string(output))
		if detail == "" {
			return fmt.Errorf("git mv %s: %w", from, err)
		}
		return fmt.Errorf("git mv %s: %w: %s", from, err, detail)
	}
	return nil
}

// Name implements Mover.
func (Git) Name() string { return "git" }

func validateNames(names ...string) error {
	for _, name := range names {
		if name == "" {
			return errors.New("file name required")
		}
		if name != filepath.Base(name) {
			return fmt.Errorf("file name %q must not contain path separators", name)
		}
	}
	return nil
}
