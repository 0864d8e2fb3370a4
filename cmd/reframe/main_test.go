package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"reframe/internal/config"
	"reframe/internal/journal"
	"reframe/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	framesDir  string
	baseDir    string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	framesDir := filepath.Join(base, "frames")
	if err := os.MkdirAll(framesDir, 0o755); err != nil {
		t.Fatalf("create frames dir: %v", err)
	}

	cfg := testsupport.NewConfig(t, opts...)

	configPath := filepath.Join(base, "config.toml")
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{
		cfg:        cfg,
		configPath: configPath,
		framesDir:  framesDir,
		baseDir:    base,
	}
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}

// pngNames lists the .png files in dir, sorted. The apply run lock file
// and other non-candidates are filtered out so assertions stay focused
// on the frames.
func pngNames(t *testing.T, dir string) []string {
	t.Helper()
	names := testsupport.ListNames(t, dir)
	kept := names[:0]
	for _, name := range names {
		if strings.HasSuffix(strings.ToLower(name), ".png") {
			kept = append(kept, name)
		}
	}
	sort.Strings(kept)
	return kept
}

func TestCLIPlanAndApply(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteFrames(t, env.framesDir,
		"CKT template 90x90 cropped light.png",
		"CKT template small close 60x50 dark.png",
		"CKT aquarell 100x100 dark.png",
		"random_icon.png",
	)

	out, _, err := runCLI(t, []string{"plan", env.framesDir}, env.configPath)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	requireContains(t, out, "Proposed renames:")
	requireContains(t, out, "ckt-template-90x90-crop-light.png")
	requireContains(t, out, "ckt-template-60x50-close-dark.png")
	requireContains(t, out, "ckt-aquarell-100x100-full-dark.png")
	requireContains(t, out, "Skipped 1 files")
	requireContains(t, out, "3 renames pending")

	unchanged := []string{
		"CKT aquarell 100x100 dark.png",
		"CKT template 90x90 cropped light.png",
		"CKT template small close 60x50 dark.png",
		"random_icon.png",
	}
	if got := pngNames(t, env.framesDir); !reflect.DeepEqual(got, unchanged) {
		t.Fatalf("plan must not touch the directory, got %v", got)
	}

	out, stderr, err := runCLI(t, []string{"apply", env.framesDir}, env.configPath)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	requireContains(t, out, "Applying renames:")
	requireContains(t, out, "Renamed 3 files.")
	requireContains(t, stderr, "renamed")

	want := []string{
		"ckt-aquarell-100x100-full-dark.png",
		"ckt-template-60x50-close-dark.png",
		"ckt-template-90x90-crop-light.png",
		"random_icon.png",
	}
	if got := pngNames(t, env.framesDir); !reflect.DeepEqual(got, want) {
		t.Fatalf("directory after apply = %v, want %v", got, want)
	}

	data, err := os.ReadFile(filepath.Join(env.framesDir, "ckt-template-90x90-crop-light.png"))
	if err != nil {
		t.Fatalf("read renamed file: %v", err)
	}
	if string(data) != "frame:CKT template 90x90 cropped light.png" {
		t.Fatalf("renamed file carries wrong content: %q", data)
	}

	// Canonical names do not re-parse, so a second plan finds nothing.
	out, _, err = runCLI(t, []string{"plan", env.framesDir}, env.configPath)
	if err != nil {
		t.Fatalf("plan after apply: %v", err)
	}
	requireContains(t, out, "No matching files found to rename.")
}

func TestCLIPlanJSON(t *testing.T) {
	env := setupCLITestEnv(t)
	source := "CKT template 90x90 cropped light.png"
	testsupport.WriteFrames(t, env.framesDir, source, "random_icon.png")

	out, _, err := runCLI(t, []string{"plan", env.framesDir, "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("plan --json: %v", err)
	}

	var payload struct {
		Directory string `json:"directory"`
		Entries   []struct {
			Source    string `json:"source"`
			Target    string `json:"target"`
			SizeBytes int64  `json:"size_bytes"`
		} `json:"entries"`
		Skipped []string `json:"skipped"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode plan JSON: %v\n%s", err, out)
	}
	if payload.Directory != env.framesDir {
		t.Fatalf("directory = %q, want %q", payload.Directory, env.framesDir)
	}
	if len(payload.Entries) != 1 {
		t.Fatalf("entries = %+v, want one", payload.Entries)
	}
	entry := payload.Entries[0]
	if entry.Source != source || entry.Target != "ckt-template-90x90-crop-light.png" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if want := int64(len("frame:" + source)); entry.SizeBytes != want {
		t.Fatalf("size_bytes = %d, want %d", entry.SizeBytes, want)
	}
	if !reflect.DeepEqual(payload.Skipped, []string{"random_icon.png"}) {
		t.Fatalf("skipped = %v", payload.Skipped)
	}
}

func TestCLIPlanHonorsExtraFamilies(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithExtraFamilies("linocut"))
	// Without the configured family this name declares nothing and would
	// be skipped: it neither contains a built-in family word nor starts
	// with ckt.
	testsupport.WriteFrames(t, env.framesDir, "Linocut print 90x90 light.png")

	out, _, err := runCLI(t, []string{"plan", env.framesDir}, env.configPath)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	requireContains(t, out, "ckt-linocut-90x90-full-light.png")
	requireContains(t, out, "1 renames pending")
}

func TestCLIApplyCollisionLeavesDirectoryUntouched(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteFrames(t, env.framesDir,
		"CKT template 90x90 cropped light.png",
		"CKT TEMPLATE 90X90 CROPPED LIGHT.png",
	)

	_, _, err := runCLI(t, []string{"apply", env.framesDir}, env.configPath)
	if err == nil {
		t.Fatal("expected collision error")
	}
	requireContains(t, err.Error(), "duplicate rename targets")
	requireContains(t, err.Error(), "ckt-template-90x90-crop-light.png")

	want := []string{
		"CKT TEMPLATE 90X90 CROPPED LIGHT.png",
		"CKT template 90x90 cropped light.png",
	}
	if got := pngNames(t, env.framesDir); !reflect.DeepEqual(got, want) {
		t.Fatalf("directory changed on collision: %v", got)
	}
}

func TestCLIApplyExistingTargetLeavesDirectoryUntouched(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteFrames(t, env.framesDir,
		"CKT template 90x90 cropped light.png",
		"ckt-template-90x90-crop-light.png",
	)

	_, _, err := runCLI(t, []string{"apply", env.framesDir}, env.configPath)
	if err == nil {
		t.Fatal("expected exists error")
	}
	requireContains(t, err.Error(), "already exist")
	requireContains(t, err.Error(), "ckt-template-90x90-crop-light.png")

	want := []string{
		"CKT template 90x90 cropped light.png",
		"ckt-template-90x90-crop-light.png",
	}
	if got := pngNames(t, env.framesDir); !reflect.DeepEqual(got, want) {
		t.Fatalf("directory changed on exists error: %v", got)
	}
}

func TestCLIApplyGitMover(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteFrames(t, env.framesDir, "CKT template 90x90 light.png")

	logPath := filepath.Join(env.baseDir, "git.log")
	testsupport.StubBinary(t, "git", fmt.Sprintf("echo \"$@\" >> %q\nmv -- \"$3\" \"$4\"\n", logPath))

	out, _, err := runCLI(t, []string{"apply", env.framesDir, "--git"}, env.configPath)
	if err != nil {
		t.Fatalf("apply --git: %v", err)
	}
	requireContains(t, out, "Renamed 1 files.")

	logData, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read git log: %v", err)
	}
	requireContains(t, string(logData), "mv -- CKT template 90x90 light.png ckt-template-90x90-full-light.png")

	if _, err := os.Stat(filepath.Join(env.framesDir, "ckt-template-90x90-full-light.png")); err != nil {
		t.Fatalf("expected renamed file: %v", err)
	}

	store := testsupport.MustOpenJournal(t, env.cfg)
	runs, err := store.Runs(context.Background(), 0)
	if err != nil {
		t.Fatalf("journal runs: %v", err)
	}
	if len(runs) != 1 || runs[0].Mover != "git" {
		t.Fatalf("unexpected journal runs: %+v", runs)
	}
}

func TestCLIApplyStopsAtFirstFailure(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteFrames(t, env.framesDir,
		"CKT aquarell 100x100 dark.png",
		"CKT template 90x90 cropped light.png",
		"CKT template small close 60x50 dark.png",
	)

	// The stubbed git applies the first move and fails every one after it.
	statePath := filepath.Join(env.baseDir, "git.count")
	script := fmt.Sprintf(`count=$(cat %[1]q 2>/dev/null || echo 0)
count=$((count + 1))
echo "$count" > %[1]q
if [ "$count" -ge 2 ]; then
  echo "fatal: simulated failure" >&2
  exit 1
fi
mv -- "$3" "$4"
`, statePath)
	testsupport.StubBinary(t, "git", script)

	_, stderr, err := runCLI(t, []string{"apply", env.framesDir, "--git"}, env.configPath)
	if err == nil {
		t.Fatal("expected apply to fail")
	}
	requireContains(t, err.Error(), "git mv")
	requireContains(t, err.Error(), "simulated failure")
	requireContains(t, stderr, "1 of 3 renames were applied before the failure")

	want := []string{
		"CKT template 90x90 cropped light.png",
		"CKT template small close 60x50 dark.png",
		"ckt-aquarell-100x100-full-dark.png",
	}
	if got := pngNames(t, env.framesDir); !reflect.DeepEqual(got, want) {
		t.Fatalf("directory after partial failure = %v, want %v", got, want)
	}

	store := testsupport.MustOpenJournal(t, env.cfg)
	runs, err := store.Runs(context.Background(), 0)
	if err != nil {
		t.Fatalf("journal runs: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("runs = %+v, want one", runs)
	}
	if runs[0].Status != journal.StatusFailed || runs[0].Applied != 1 {
		t.Fatalf("run = %+v, want failed with one applied move", runs[0])
	}
	moves, err := store.Moves(context.Background(), runs[0].ID)
	if err != nil {
		t.Fatalf("journal moves: %v", err)
	}
	if len(moves) != 1 || moves[0].Source != "CKT aquarell 100x100 dark.png" {
		t.Fatalf("unexpected journal moves: %+v", moves)
	}
}

func TestCLIApplyEmptyDirectory(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"apply", env.framesDir}, env.configPath)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	requireContains(t, out, "No matching files found to rename.")

	// Nothing to rename means nothing to journal.
	store := testsupport.MustOpenJournal(t, env.cfg)
	runs, err := store.Runs(context.Background(), 0)
	if err != nil {
		t.Fatalf("journal runs: %v", err)
	}
	if len(runs) != 0 {
		t.Fatalf("expected no journal runs, got %+v", runs)
	}
}

func TestCLIPlanMissingDirectory(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"plan", filepath.Join(env.baseDir, "absent")}, env.configPath)
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
	requireContains(t, err.Error(), "inspect directory")
}
