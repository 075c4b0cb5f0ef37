package scanner

import (
	"fmt"
	"iter"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/skyburst/gbmfn/internal/files/filesystem"
)

// Options controls a single traversal.
type Options struct {
	// IncludeHidden yields entries whose name starts with the hidden-file
	// marker ("."). Hidden directories are likewise descended into only when
	// this is set.
	IncludeHidden bool

	// Recursive descends into subdirectories. Directory entries themselves
	// are never yielded.
	Recursive bool

	// Absolute converts yielded paths to absolute form.
	Absolute bool

	// Pattern, when non-nil, restricts yielded files to those whose base
	// name matches it. Directories are not subject to the pattern.
	Pattern *regexp.Regexp
}

// Scanner discovers files under a root directory.
// Scanner is safe for concurrent use by multiple goroutines as long as the
// provided fsProvider is also thread-safe.
type Scanner struct {
	fsProvider filesystem.FileSystemProvider
}

// NewScanner creates a new file scanner over the OS filesystem.
func NewScanner() *Scanner {
	return &Scanner{fsProvider: filesystem.NewOSFileSystem()}
}

// NewScannerWithFS creates a new file scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider is nil.
func NewScannerWithFS(fsProvider filesystem.FileSystemProvider) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{fsProvider: fsProvider}
}

// Scan returns a lazy sequence of file paths under root. Elements are
// produced on demand as the caller pulls them; each range over the sequence
// starts a fresh traversal, so the sequence is restartable and holds no
// shared cursor state.
//
// Entries come back in the underlying filesystem's native order. An
// enumeration error is yielded in the error position and ends the walk; the
// caller simply ceasing to pull is the only cancellation mechanism needed.
func (s *Scanner) Scan(root string, opts Options) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		s.walk(root, opts, yield)
	}
}

// walk enumerates one directory level, recursing per opts. Returns false
// when the consumer stopped pulling or a yielded error ended the walk.
func (s *Scanner) walk(dir string, opts Options, yield func(string, error) bool) bool {
	entries, err := s.fsProvider.ReadDir(dir)
	if err != nil {
		yield("", fmt.Errorf("failed to scan %s: %w", dir, err))
		return false
	}

	for _, entry := range entries {
		name := entry.Name()
		if !opts.IncludeHidden && strings.HasPrefix(name, ".") {
			continue
		}

		full := filepath.Join(dir, name)

		if entry.IsDir() {
			if opts.Recursive {
				if !s.walk(full, opts, yield) {
					return false
				}
			}
			continue
		}

		if opts.Pattern != nil && !opts.Pattern.MatchString(name) {
			continue
		}

		if opts.Absolute {
			abs, err := s.fsProvider.Abs(full)
			if err != nil {
				yield("", fmt.Errorf("failed to resolve %s: %w", full, err))
				return false
			}
			full = abs
		}

		if !yield(full, nil) {
			return false
		}
	}

	return true
}
