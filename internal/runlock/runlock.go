// Package runlock serializes apply runs on a directory.
//
// The validation model assumes nothing else renames files between the
// snapshot and the last executed move, so apply takes an advisory lock
// for the whole run. Plan-only invocations never lock; they read, they
// do not mutate.
package runlock

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockFileName is created inside the target directory. It stays behind
// after a run; flock locks the open file, not the name.
const LockFileName = ".reframe.lock"

// Lock guards one directory against concurrent apply runs.
type Lock struct {
	path string
	fl   *flock.Flock
}

// New prepares a lock for dir. The lock file lives inside the directory
// so every process working on the same tree contends on the same file.
func New(dir string) *Lock {
	path := filepath.Join(dir, LockFileName)
	return &Lock{path: path, fl: flock.New(path)}
}

// Acquire takes the lock without blocking. A held lock reports an error
// naming the lock file.
func (l *Lock) Acquire() error {
	ok, err := l.fl.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("another apply run holds %s", l.path)
	}
	return nil
}

// Release drops the lock.
func (l *Lock) Release() error {
	return l.fl.Unlock()
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	return l.path
}
