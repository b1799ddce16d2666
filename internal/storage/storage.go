package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

const (
	filePerm = 0o644
	dirPerm  = 0o755
)

// Source is where extracts and metadata are read from.
type Source interface {
	Open(name string) (io.ReadCloser, error)
	ReadFile(name string) ([]byte, error)
	Exists(name string) (bool, error)
}

// Sink is where generated artifacts are written to.
type Sink interface {
	Create(name string) (io.WriteCloser, error)
	WriteFile(name string, data []byte) error
	MkdirAll(name string) error
}

// ReadWriter is both ends of a run's file traffic.
type ReadWriter interface {
	Source
	Sink
}

// FS is a Source and a Sink backed by go-billy.
type FS struct {
	fs billy.Filesystem
}

// New wraps an existing billy filesystem.
func New(fsys billy.Filesystem) *FS {
	return &FS{fs: fsys}
}

// NewOS roots a filesystem at dir on disk.
func NewOS(dir string) *FS {
	return New(osfs.New(dir))
}

// NewMemory creates an empty in-memory filesystem.
func NewMemory() *FS {
	return New(memfs.New())
}

// Open implements Source.
func (s *FS) Open(name string) (io.ReadCloser, error) {
	f, err := s.fs.Open(name)
	if err != nil {
		return nil, fmt.Errorf("storage: open %q: %w", name, err)
	}

	return f, nil
}

// ReadFile implements Source.
func (s *FS) ReadFile(name string) ([]byte, error) {
	data, err := util.ReadFile(s.fs, name)
	if err != nil {
		return nil, fmt.Errorf("storage: read %q: %w", name, err)
	}

	return data, nil
}

// Exists implements Source.
func (s *FS) Exists(name string) (bool, error) {
	_, err := s.fs.Stat(name)

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("storage: stat %q: %w", name, err)
	}
}

// Create implements Sink. Missing parent directories are created.
func (s *FS) Create(name string) (io.WriteCloser, error) {
	if err := s.MkdirAll(path.Dir(name)); err != nil {
		return nil, err
	}

	f, err := s.fs.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerm)
	if err != nil {
		return nil, fmt.Errorf("storage: create %q: %w", name, err)
	}

	return f, nil
}

// WriteFile implements Sink. Missing parent directories are created.
func (s *FS) WriteFile(name string, data []byte) error {
	if err := s.MkdirAll(path.Dir(name)); err != nil {
		return err
	}

	if err := util.WriteFile(s.fs, name, data, filePerm); err != nil {
		return fmt.Errorf("storage: write %q: %w", name, err)
	}

	return nil
}

// MkdirAll implements Sink.
func (s *FS) MkdirAll(name string) error {
	if name == "" || name == "." {
		return nil
	}

	if err := s.fs.MkdirAll(name, dirPerm); err != nil {
		return fmt.Errorf("storage: mkdir %q: %w", name, err)
	}

	return nil
}

// Raw returns the underlying billy filesystem.
//
//nolint:ireturn // exposes the adapter target.
func (s *FS) Raw() billy.Filesystem {
	return s.fs
}
