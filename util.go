package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	// ErrEnsureDir indicates that the directories leading to the settings
	// file could not be created, or that the target path is occupied by a
	// directory.
	ErrEnsureDir = errors.New("ensure settings directory")

	// ErrWrite indicates that the encoded record could not be written out.
	ErrWrite = errors.New("write settings file")
)

// ensurePath prepares the filesystem for a write to path: missing parent
// directories are created with dirMode, and a directory already occupying
// path itself is rejected.
func ensurePath(path string, dirMode os.FileMode) error {
	info, err := os.Stat(path)
	switch {
	case err == nil:
		if info.IsDir() {
			return fmt.Errorf("%w: %s is a directory", ErrEnsureDir, path)
		}
		return nil
	case !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: %w", ErrEnsureDir, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return fmt.Errorf("%w: %w", ErrEnsureDir, err)
	}
	return nil
}

// writeFileAtomic writes data to path through a temp file in the same
// directory followed by a rename, so a concurrent reader observes either the
// previous content or the new content, never a partial file. The temp file is
// chmodded to fileMode before the rename; os.CreateTemp starts it at 0600.
func writeFileAtomic(path string, data []byte, fileMode os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %w", ErrWrite, err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w %s: %w", ErrWrite, path, err)
	}
	if err := tmp.Chmod(fileMode); err != nil {
		tmp.Close()
		return fmt.Errorf("%w %s: %w", ErrWrite, path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w %s: close temp file: %w", ErrWrite, path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWrite, path, err)
	}
	return nil
}
