package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryEntry is a single file or directory in the virtual filesystem
type memoryEntry struct {
	absPath string
	info    fs.FileInfo
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Entries are listed in insertion order, standing in for the OS filesystem's
// native (unsorted) order.
type MemoryFileSystem struct {
	entries map[string]*memoryEntry // map of absolute path -> entry
	order   []string                // absolute paths in insertion order
	root    string                  // root directory path
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	// Normalize root to forward slashes (virtual filesystem convention)
	root = filepath.ToSlash(root)
	root = path.Clean(root)

	mfs := &MemoryFileSystem{
		entries: make(map[string]*memoryEntry),
		root:    root,
	}

	// Create the root directory entry
	mfs.entries[root] = &memoryEntry{
		absPath: root,
		info: &memoryFileInfo{
			name:    path.Base(root),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}

	return mfs
}

// AddFile adds a file to the in-memory filesystem. The size recorded in its
// FileInfo reflects the given content length; content itself is not retained
// since the provider surface is enumeration and stat only.
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.AddFileWithTime(filePath, content, time.Now())
}

// AddFileWithTime adds a file with a specific modification time
func (mfs *MemoryFileSystem) AddFileWithTime(filePath string, content string, modTime time.Time) {
	absPath := mfs.abs(filePath)

	mfs.put(&memoryEntry{
		absPath: absPath,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(content)),
			mode:    0644,
			modTime: modTime,
			isDir:   false,
		},
	})

	// Also add parent directories
	mfs.ensureDirectoriesExist(absPath)
}

// AddDir adds an (empty) directory entry and its parents.
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	absPath := mfs.abs(dirPath)
	mfs.putDir(absPath)
	mfs.ensureDirectoriesExist(absPath)
}

// abs converts a path to its absolute form within the virtual filesystem.
func (mfs *MemoryFileSystem) abs(p string) string {
	p = filepath.ToSlash(p)
	var absPath string
	if p == "." || p == "" {
		absPath = mfs.root
	} else if strings.HasPrefix(p, "/") || path.IsAbs(p) {
		absPath = p
	} else {
		absPath = path.Join(mfs.root, p)
	}
	return path.Clean(absPath)
}

// put inserts or replaces an entry, keeping insertion order stable.
func (mfs *MemoryFileSystem) put(e *memoryEntry) {
	if _, exists := mfs.entries[e.absPath]; !exists {
		mfs.order = append(mfs.order, e.absPath)
	}
	mfs.entries[e.absPath] = e
}

func (mfs *MemoryFileSystem) putDir(absPath string) {
	if _, exists := mfs.entries[absPath]; exists {
		return
	}
	mfs.put(&memoryEntry{
		absPath: absPath,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	})
}

// ensureDirectoriesExist creates directory entries for all parent directories
func (mfs *MemoryFileSystem) ensureDirectoriesExist(filePath string) {
	dir := path.Dir(filePath)
	if dir == "." || dir == "/" || dir == mfs.root {
		return
	}
	if _, exists := mfs.entries[dir]; exists {
		return
	}

	mfs.putDir(dir)

	// Recursively create parent directories
	mfs.ensureDirectoriesExist(dir)
}

// ReadDir implements FileSystemProvider.ReadDir. Direct children only, in
// insertion order.
func (mfs *MemoryFileSystem) ReadDir(dirPath string) ([]FileInfo, error) {
	absPath := mfs.abs(dirPath)

	entry, exists := mfs.entries[absPath]
	if !exists {
		return nil, fmt.Errorf("directory not found: %s", dirPath)
	}
	if !entry.info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dirPath)
	}

	var result []FileInfo
	for _, p := range mfs.order {
		if p == absPath {
			continue
		}
		if path.Dir(p) == absPath {
			result = append(result, mfs.entries[p].info)
		}
	}
	return result, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	absPath := mfs.abs(statPath)

	entry, exists := mfs.entries[absPath]
	if !exists {
		return nil, fmt.Errorf("path not found: %s", statPath)
	}

	return entry.info, nil
}

// Abs implements FileSystemProvider.Abs
func (mfs *MemoryFileSystem) Abs(p string) (string, error) {
	return mfs.abs(p), nil
}

// Verify MemoryFileSystem implements the interface at compile time
var _ FileSystemProvider = (*MemoryFileSystem)(nil)
