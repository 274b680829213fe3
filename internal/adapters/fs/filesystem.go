// Package fs implements the filesystem port on top of the operating system.
package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/overlay/internal/core/domain"
	"go.trai.ch/overlay/internal/core/ports"
)

// FileSystem implements ports.FileSystem using the os package.
type FileSystem struct{}

// New creates a new FileSystem.
func New() *FileSystem {
	return &FileSystem{}
}

// Exists reports whether path exists.
func (f *FileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Times returns the modification and status change times of path.
func (f *FileSystem) Times(path string) (ports.FileTimes, error) {
	info, err := os.Stat(path)
	if err != nil {
		return ports.FileTimes{}, err
	}

	changed, err := changeTime(path)
	if err != nil {
		changed = info.ModTime()
	}

	return ports.FileTimes{
		Modified: info.ModTime(),
		Changed:  changed,
	}, nil
}

// MkdirAll creates path and any missing parents.
func (f *FileSystem) MkdirAll(path string) error {
	err := os.MkdirAll(path, domain.DirPerm)
	if err != nil && errors.Is(err, fs.ErrExist) && f.Exists(path) {
		return nil
	}
	return err
}

// Canonical resolves path to an absolute path without symlinks.
func (f *FileSystem) Canonical(path string) (string, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", false
	}
	return resolved, true
}

// ReadDir lists the entries of a directory sorted by name.
func (f *FileSystem) ReadDir(path string) ([]fs.DirEntry, error) {
	return os.ReadDir(path)
}

// Remove deletes a single file.
func (f *FileSystem) Remove(path string) error {
	return os.Remove(path)
}

// RemoveAll deletes path recursively. A missing path is not an error.
func (f *FileSystem) RemoveAll(path string) error {
	return os.RemoveAll(path)
}
