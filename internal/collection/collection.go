package collection

import (
	"path/filepath"

	"github.com/skyburst/gbmfn/internal/files/filesystem"
	"github.com/skyburst/gbmfn/pkg/gbmfn"
)

// AllExist reports whether every record's resolved path exists on the
// filesystem. When parentDir is non-empty, each record's basename is resolved
// against it; otherwise the record's own FullPath is used. Short-circuits on
// the first absence.
func AllExist(fs filesystem.FileSystemProvider, records []gbmfn.Record, parentDir string) bool {
	for _, rec := range records {
		p := rec.FullPath()
		if parentDir != "" {
			p = filepath.Join(parentDir, rec.Basename())
		}
		if _, err := fs.Stat(p); err != nil {
			return false
		}
	}
	return true
}

// HasDetector reports whether any record's detector equals d.
func HasDetector(records []gbmfn.Record, d gbmfn.Detector) bool {
	for _, rec := range records {
		if rec.Detector == d {
			return true
		}
	}
	return false
}

// IsComplete reports whether the collection covers the full detector set:
// HasDetector holds for every member of the fixed enumeration.
func IsComplete(records []gbmfn.Record) bool {
	for _, d := range gbmfn.AllDetectors() {
		if !HasDetector(records, d) {
			return false
		}
	}
	return true
}

// MaxVersion folds the highest version out of the records. The second return
// is false when records is empty. Names whose version token failed to parse
// never become records in the first place; tolerating them is the concern of
// filename.ListFromPaths with a side list.
func MaxVersion(records []gbmfn.Record) (int, bool) {
	return foldVersion(records, func(v, best int) bool { return v > best })
}

// MinVersion folds the lowest version out of the records. The second return
// is false when records is empty.
func MinVersion(records []gbmfn.Record) (int, bool) {
	return foldVersion(records, func(v, best int) bool { return v < best })
}

func foldVersion(records []gbmfn.Record, better func(v, best int) bool) (int, bool) {
	if len(records) == 0 {
		return 0, false
	}
	best := records[0].Version
	for _, rec := range records[1:] {
		if better(rec.Version, best) {
			best = rec.Version
		}
	}
	return best, true
}
