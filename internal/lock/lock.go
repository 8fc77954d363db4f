// Package lock serializes runs against the same namespace with an OS-level
// file lock, so two batchrename processes never rename in one directory or
// scene at the same time.
package lock

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

var (
	// ErrLockTimeout is returned when another process holds the lock for longer than the timeout.
	ErrLockTimeout = errors.New("timeout acquiring lock")
	// ErrPathRequired is returned for an empty namespace path.
	ErrPathRequired = errors.New("namespace path is required")
)

// DirLockName is the lock file created inside a directory namespace.
const DirLockName = ".batchrename.lock"

// pollInterval is the interval to sleep between lock attempts.
const pollInterval = 10 * time.Millisecond

// Lock is a held namespace lock. Release it when the run ends.
type Lock struct {
	Path  string // lock file path
	flock *flock.Flock
}

// Path returns the lock file for a namespace: <dir>/.batchrename.lock for a
// directory, <file>.lock otherwise.
func Path(namespace string) string {
	if fi, err := os.Stat(namespace); err == nil && fi.IsDir() {
		return filepath.Join(namespace, DirLockName)
	}
	return namespace + ".lock"
}

// Acquire takes the exclusive lock for namespace, waiting up to timeout.
// Cancelling ctx stops the wait and returns ctx's error.
func Acquire(ctx context.Context, namespace string, timeout time.Duration) (*Lock, error) {
	if namespace == "" {
		return nil, ErrPathRequired
	}

	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	path := Path(namespace)
	fl := flock.New(path)
	locked, err := fl.TryLockContext(waitCtx, pollInterval)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s", ErrLockTimeout, path)
		}
		return nil, fmt.Errorf("error acquiring lock %s: %w", path, err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: %s", ErrLockTimeout, path)
	}
	return &Lock{Path: path, flock: fl}, nil
}

// Release unlocks the lock file. The file itself stays so a waiting process
// never ends up locking a different inode. Safe on a nil Lock.
func (l *Lock) Release() error {
	if l == nil || l.flock == nil {
		return nil
	}
	err := l.flock.Unlock()
	l.flock = nil
	return err
}
