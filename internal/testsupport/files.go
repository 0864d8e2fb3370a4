package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFrames creates one small file per name inside dir. Each file gets
// distinct content so tests can verify a rename moved bytes, not just
// names.
func WriteFrames(t testing.TB, dir string, names ...string) {
	t.Helper()

	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("frame:"+name), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
}

// ListNames returns the base names inside dir, unordered.
func ListNames(t testing.TB, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir %s: %v", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}

// StubBinary writes an executable shell script named name into a fresh
// directory and prepends that directory to PATH for the duration of the
// test.
func StubBinary(t *testing.T, name, script string) string {
	t.Helper()

	binDir := t.TempDir()
	path := filepath.Join(binDir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
	oldPath := os.Getenv("PATH")
	newPath := binDir
	if oldPath != "" {
		newPath = binDir + string(os.PathListSeparator) + oldPath
	}
	t.Setenv("PATH", newPath)
	return path
}
