package core

import (
	"os"
	"path/filepath"
	"sort"
)

//go:generate mockgen -source=filesystem.go -destination=filesystem_mock_test.go -package=core

// FileSystem abstracts file system operations for testing
type FileSystem interface {
	ReadDir(path string) ([]os.DirEntry, error)
	Stat(path string) (os.FileInfo, error)
	Lstat(path string) (os.FileInfo, error)
	MkdirAll(path string, perm os.FileMode) error
	Remove(path string) error
	Symlink(target, link string) error
	CreateTemp(dir, pattern string) (*os.File, error)
	RealPath(path string) (string, error)
}

// OSFileSystem implements FileSystem using standard os package
type OSFileSystem struct{}

// NewOSFileSystem creates a new OSFileSystem
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// Compile-time interface satisfaction check for OSFileSystem.
var _ FileSystem = (*OSFileSystem)(nil)

// ReadDir lists directory contents sorted by name
func (fs *OSFileSystem) ReadDir(path string) ([]os.DirEntry, error) {
	if path == "" {
		path = "."
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

// Stat returns file info, following symlinks
func (fs *OSFileSystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// Lstat returns file info without following symlinks
func (fs *OSFileSystem) Lstat(path string) (os.FileInfo, error) {
	return os.Lstat(path)
}

// MkdirAll creates a directory path
func (fs *OSFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Remove removes a file or symlink
func (fs *OSFileSystem) Remove(path string) error {
	return os.Remove(path)
}

// Symlink creates link pointing at target
func (fs *OSFileSystem) Symlink(target, link string) error {
	return os.Symlink(target, link)
}

// CreateTemp creates a temporary file in dir
func (fs *OSFileSystem) CreateTemp(dir, pattern string) (*os.File, error) {
	return os.CreateTemp(dir, pattern)
}

// RealPath resolves path to an absolute path with symlinks evaluated.
// Falls back to the absolute form when the target cannot be resolved,
// so a dangling source still gets a deterministic link target.
func (fs *OSFileSystem) RealPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return abs, nil
	}
	return resolved, nil
}
