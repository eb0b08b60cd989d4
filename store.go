package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ygrebnov/prefs/streams"
)

// Exported error categories returned by this package. These are used with
// wrapping so callers can detect error classes using errors.Is/As.
//   - ErrNoConfigDir: the platform config root could not be determined
//     (Auto and FileName locations only).
//   - ErrEnsureDir: parent directories for the settings file could not be
//     created, or the target path is occupied by a directory.
//   - ErrEncode: the codec could not serialize the record.
//   - ErrDecode: the settings file exists but could not be deserialized.
//   - ErrWrite: the encoded record could not be written to disk.
//
// A missing settings file is not a category of its own: Load and Delete
// return the underlying filesystem error, detectable with
// errors.Is(err, os.ErrNotExist).
var (
	ErrNoConfigDir = errors.New("no user config directory")
	ErrEncode      = errors.New("encode settings")
	ErrDecode      = errors.New("decode settings")
)

// Store manages one settings file for records of type T. An application name,
// a Location and a Format fully determine the file's path; Save, Load and
// Delete operate on it. The identity is fixed at construction and the path is
// recomputed from it on every call rather than cached, so a Store holds no
// open resources, carries no state between operations and can be shared
// freely across goroutines.
//
// Operations against the same resolved path are not serialized: concurrent
// saves race with last-writer-wins, and a Delete racing a Save may remove
// either version. Stores do not coordinate across processes either; callers
// that need exclusion must arrange it themselves.
type Store[T any] struct {
	app      string
	location Location
	format   Format
	dirs     DirProvider
	fileMode os.FileMode
	dirMode  os.FileMode
	streams  streams.IOStreams
}

// Option configures a Store at construction time. Options are composable and
// can be passed to New in any order.
type Option[T any] func(*Store[T])

// New constructs a Store for records of type T under the given application
// name. Without options the store keeps its settings at
// <config root>/<app>/config.json with 0600 file and 0700 directory
// permissions. Panics if app is empty.
func New[T any](app string, opts ...Option[T]) *Store[T] {
	if app == "" {
		panic("prefs: New: app cannot be empty")
	}
	s := &Store[T]{
		app:      app,
		location: Auto(),
		format:   JSON,
		dirs:     osDirs{},
		fileMode: 0o600,
		dirMode:  0o700,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithLocation selects the path strategy; the default is Auto.
func WithLocation[T any](l Location) Option[T] {
	return func(s *Store[T]) {
		s.location = l
	}
}

// WithFormat selects the serialization format; the default is JSON.
// Panics if f carries no codec (the zero Format).
func WithFormat[T any](f Format) Option[T] {
	return func(s *Store[T]) {
		if f.c == nil {
			panic("prefs: WithFormat: format has no codec")
		}
		s.format = f
	}
}

// WithDirProvider substitutes the source of the platform config root used by
// the Auto and FileName locations. Panics if p is nil.
func WithDirProvider[T any](p DirProvider) Option[T] {
	return func(s *Store[T]) {
		if p == nil {
			panic("prefs: WithDirProvider: provider cannot be nil")
		}
		s.dirs = p
	}
}

// WithStreams wires sinks for the store's diagnostics (directory cleanup
// notes and warnings). Pass adapters from the companion streams package to
// route output to buffers, logs, or io.Discard. Stores are silent without it.
func WithStreams[T any](streams streams.IOStreams) Option[T] {
	return func(s *Store[T]) {
		s.streams = streams
	}
}

// WithFileMode sets the permission bits applied to the settings file on save.
// The default is 0600.
func WithFileMode[T any](mode os.FileMode) Option[T] {
	return func(s *Store[T]) {
		s.fileMode = mode
	}
}

// WithDirMode sets the permission bits for directories the store creates.
// The default is 0700.
func WithDirMode[T any](mode os.FileMode) Option[T] {
	return func(s *Store[T]) {
		s.dirMode = mode
	}
}

// Path returns the settings file path the store's identity resolves to.
// Resolution is purely textual; the file may not exist yet. Fails with
// ErrNoConfigDir when the platform config root is needed but unavailable.
func (s *Store[T]) Path() (string, error) {
	return s.location.resolve(s.app, s.format, s.dirs)
}

// Save encodes rec and writes it to the resolved path, creating missing
// parent directories first and replacing any existing file atomically.
// Failures are ErrNoConfigDir, ErrEnsureDir, ErrEncode or ErrWrite. A failure
// after directory creation leaves the created directories in place; the
// previous file content survives any failed save.
func (s *Store[T]) Save(rec *T) error {
	path, err := s.Path()
	if err != nil {
		return err
	}
	if err := ensurePath(path, s.dirMode); err != nil {
		return err
	}
	data, err := s.encode(rec)
	if err != nil {
		return err
	}
	return writeFileAtomic(path, data, s.fileMode)
}

// encode runs the codec with a recover guard: yaml.v3 panics on kinds it
// cannot represent (func, chan), and host-registered codecs may do the same.
func (s *Store[T]) encode(rec *T) (data []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			data, err = nil, fmt.Errorf("%w as %s: %v", ErrEncode, s.format.Tag(), r)
		}
	}()
	data, err = s.format.Codec().Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("%w as %s: %w", ErrEncode, s.format.Tag(), err)
	}
	return data, nil
}

// Load reads the settings file and decodes it into a fresh record. A missing
// file reports the underlying os.ErrNotExist; content the codec cannot
// deserialize into T reports ErrDecode.
func (s *Store[T]) Load() (*T, error) {
	path, err := s.Path()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	rec := new(T)
	if err := s.format.Codec().Unmarshal(data, rec); err != nil {
		return nil, fmt.Errorf("%w as %s: %w", ErrDecode, s.format.Tag(), err)
	}
	return rec, nil
}

// Exists reports whether a settings file is present at the resolved path
// without reading it.
func (s *Store[T]) Exists() (bool, error) {
	path, err := s.Path()
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	return true, nil
}

// Delete removes the settings file. Deleting a file that was never saved
// reports the underlying os.ErrNotExist.
//
// Afterwards the store tidies up behind itself: unless the location is
// Directory (a caller-owned directory the store must not touch), it attempts
// to remove the file's parent directory and discards the outcome. The
// directory legitimately survives when it still holds other files or when
// removal is not permitted.
func (s *Store[T]) Delete() error {
	path, err := s.Path()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	if s.location.ownsParent() {
		dir := filepath.Dir(path)
		if err := os.Remove(dir); err == nil {
			s.note("prefs: removed empty settings directory %s\n", dir)
		}
	}
	return nil
}

// note writes an informational diagnostic when streams are wired.
func (s *Store[T]) note(msg string, args ...any) {
	if s.streams != nil && s.streams.Out() != nil {
		fmt.Fprintf(s.streams.Out(), msg, args...)
	}
}
