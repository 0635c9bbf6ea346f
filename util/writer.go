package util

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const (
	DirPerm  = 0o755
	FilePerm = 0o644
)

// AtomicWrite writes data to path via a temporary file in the same directory
// and a rename, so readers never see a half-written file. A zero perm keeps
// the permissions of an existing file, or FilePerm for a new one.
func AtomicWrite(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return errors.Wrap(err, "create output dir")
	}

	if perm == 0 {
		perm = FilePerm
		if info, err := os.Stat(path); err == nil {
			perm = info.Mode().Perm()
		}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	name := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(name)
		return errors.Wrap(err, "write temp file")
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(name)
		return errors.Wrap(err, "sync temp file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return errors.Wrap(err, "close temp file")
	}
	if err := os.Chmod(name, perm); err != nil {
		os.Remove(name)
		return errors.Wrap(err, "chmod temp file")
	}
	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return errors.Wrap(err, "replace output")
	}
	return nil
}
