package sorter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/dendrascience/sortdir/fsutil"
)

// LockPath returns the lock file used for target inside dir.
func LockPath(dir, target string) string {
	return filepath.Join(dir, fsutil.HashString(target)[:16]+".lock")
}

// AcquireLock takes a non-blocking exclusive lock for target. It returns
// ErrLocked when another process holds it. The caller must Unlock.
func AcquireLock(dir, target string) (*flock.Flock, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure lock directory: %w", err)
	}
	lock := flock.New(LockPath(dir, target))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w", target, ErrLocked)
	}
	return lock, nil
}
