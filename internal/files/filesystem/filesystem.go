package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// FileSystemProvider is the read-only filesystem boundary consumed by the
// directory scanner and the collection utilities. No writes, no permission
// changes.
type FileSystemProvider interface {
	// ReadDir reads the directory entries at the given path, in the
	// underlying filesystem's native order (no sort guarantee).
	ReadDir(path string) ([]FileInfo, error)

	// Stat returns file information for the given path.
	Stat(path string) (FileInfo, error)

	// Abs converts a path to its absolute form.
	Abs(path string) (string, error)
}
