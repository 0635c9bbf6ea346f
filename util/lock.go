package util

import (
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"
)

// LockSuffix is appended to a file path to name its lock file.
const LockSuffix = ".lock"

// ErrLocked is returned when another process holds the lock.
var ErrLocked = errors.New("file is locked by another process")

// Lock is an advisory, non-blocking lock on a file path.
type Lock struct {
	f *flock.Flock
}

// LockFile takes the lock for path. It does not wait: if the lock is held
// elsewhere ErrLocked is returned.
func LockFile(path string) (*Lock, error) {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return nil, errors.Wrap(err, "create lock dir")
	}

	f := flock.New(path + LockSuffix)
	ok, err := f.TryLock()
	if err != nil {
		return nil, errors.Wrap(err, "acquire lock")
	}
	if !ok {
		return nil, errors.Wrap(ErrLocked, path)
	}
	return &Lock{f: f}, nil
}

// Unlock removes the lock file and then releases the lock, so nothing is left
// next to the guarded file. A process that opened the old lock file before the
// removal can still lock it afterwards while a third creates a fresh one; both
// then hold "the" lock. LockFile never waits, so that needs two racing
// starts within the same instant.
func (l *Lock) Unlock() error {
	rerr := os.Remove(l.f.Path())
	if err := l.f.Unlock(); err != nil {
		return errors.Wrap(err, "release lock")
	}
	if rerr != nil && !os.IsNotExist(rerr) {
		// Windows refuses to remove a file while its handle is open.
		rerr = os.Remove(l.f.Path())
	}
	if rerr != nil && !os.IsNotExist(rerr) {
		return errors.Wrap(rerr, "remove lock file")
	}
	return nil
}
