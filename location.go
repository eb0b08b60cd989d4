package prefs

import (
	"fmt"
	"path/filepath"
)

// locationKind discriminates the path strategies.
type locationKind int

const (
	locationAuto locationKind = iota
	locationPath
	locationFile
	locationDir
)

// Location selects how a Store derives its settings file path. Construct one
// with Auto, FullPath, FileName or Directory; the zero value behaves like
// Auto. Resolution is purely textual and never touches the filesystem, so the
// same inputs always produce the same path.
type Location struct {
	kind locationKind
	arg  string
}

// Auto derives the path from the platform config root, the application name
// and the format's default file name: <config root>/<app>/config.<tag>. This
// is the default strategy.
func Auto() Location {
	return Location{kind: locationAuto}
}

// FullPath uses path verbatim as the settings file. The application name and
// the format's default file name play no part in resolution; path may be
// relative or absolute and its extension does not have to match the format.
// Panics if path is empty.
func FullPath(path string) Location {
	if path == "" {
		panic("prefs: FullPath: path cannot be empty")
	}
	return Location{kind: locationPath, arg: path}
}

// FileName keeps the derived directory (<config root>/<app>) but overrides
// the file name. Panics if name is empty.
func FileName(name string) Location {
	if name == "" {
		panic("prefs: FileName: name cannot be empty")
	}
	return Location{kind: locationFile, arg: name}
}

// Directory keeps the format's default file name but stores it under dir. The
// directory is treated as caller-owned: Delete removes the file inside it but
// never the directory itself. Panics if dir is empty.
func Directory(dir string) Location {
	if dir == "" {
		panic("prefs: Directory: dir cannot be empty")
	}
	return Location{kind: locationDir, arg: dir}
}

// ownsParent reports whether the store may try to remove the parent directory
// after deleting the settings file. Caller-supplied directories are exempt.
func (l Location) ownsParent() bool {
	return l.kind != locationDir
}

// resolve composes the settings file path for one store identity. Only the
// Auto and FileName strategies consult the directory provider, so only they
// can fail with ErrNoConfigDir.
func (l Location) resolve(app string, f Format, dirs DirProvider) (string, error) {
	switch l.kind {
	case locationPath:
		return l.arg, nil
	case locationDir:
		return filepath.Join(l.arg, f.DefaultFileName()), nil
	}
	root, err := dirs.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoConfigDir, err)
	}
	if l.kind == locationFile {
		return filepath.Join(root, app, l.arg), nil
	}
	return filepath.Join(root, app, f.DefaultFileName()), nil
}
