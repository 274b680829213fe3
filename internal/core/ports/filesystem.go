package ports

import (
	"io/fs"
	"time"
)

// FileTimes holds the timestamps that identify a version of a file.
type FileTimes struct {
	// Modified is the last content modification time.
	Modified time.Time
	// Changed is the last status change time.
	// Platforms without one report the modification time.
	Changed time.Time
}

// FileSystem abstracts the filesystem operations used by the engine.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Exists reports whether a regular file or directory exists at path.
	Exists(path string) bool

	// Times returns the modification and status change times of path.
	Times(path string) (FileTimes, error)

	// MkdirAll creates a directory and its parents. An existing directory is not an error.
	MkdirAll(path string) error

	// Canonical returns the absolute, symlink-free form of path.
	// It returns false when the path does not exist.
	Canonical(path string) (string, bool)

	// ReadDir lists a directory.
	ReadDir(path string) ([]fs.DirEntry, error)

	// Remove deletes a file.
	Remove(path string) error

	// RemoveAll deletes a path and everything below it.
	RemoveAll(path string) error
}
