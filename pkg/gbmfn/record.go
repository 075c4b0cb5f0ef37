package gbmfn

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Record is the structured form of a canonical data-product filename:
//
//	glg_<data_type>_<detector>_<trigger?><uid><meta?>_v<version>.<extension>
//
// A Record is produced either by parsing an existing path or by explicit
// construction (internal/filename). It is value-like: no operation mutates a
// Record after construction, so copies may be passed across goroutines freely.
type Record struct {
	// DataType is the product-type token ("cspec", "tte", "trigdat", ...).
	DataType string

	// Detector is the normalized detector, or DetectorAll when the filename
	// carries the "all" token.
	Detector Detector

	// Trigger reports whether the UID encodes a discrete triggered event
	// (marker prefix in the filename) rather than a daily/continuous segment.
	Trigger bool

	// UID is the unique-id token exactly as captured or supplied: nine digits
	// for trigger products, or a six-digit date-id with an optional sub-index
	// or letter suffix for continuous products.
	UID string

	// Meta is optional free-form content between UID and version, stored with
	// its leading underscore. Empty means absent: no separator is emitted.
	Meta string

	// Version is the two-digit product version, 0..99.
	Version int

	// Extension is the file extension without the leading dot. It may itself
	// contain dots ("pha.gz").
	Extension string

	// Directory is the path prefix. It is not part of the grammar: it is set
	// from the directory component when a Record is built from a path, or
	// explicitly by the caller. Empty by default.
	Directory string
}

// VersionStr returns the version zero-padded to exactly two digits.
func (r Record) VersionStr() string {
	return fmt.Sprintf("%02d", r.Version)
}

// Basename serializes the record back to its canonical filename. For any
// record produced by parsing, Basename returns the original string exactly.
func (r Record) Basename() string {
	var b strings.Builder
	b.WriteString(FilePrefix)
	b.WriteByte('_')
	b.WriteString(r.DataType)
	b.WriteByte('_')
	b.WriteString(r.Detector.Code())
	b.WriteByte('_')
	if r.Trigger {
		b.WriteString(TriggerMarker)
	}
	b.WriteString(r.UID)
	b.WriteString(r.Meta)
	b.WriteString("_v")
	b.WriteString(r.VersionStr())
	b.WriteByte('.')
	b.WriteString(r.Extension)
	return b.String()
}

// FullPath joins Directory and Basename using the platform path convention.
func (r Record) FullPath() string {
	return filepath.Join(r.Directory, r.Basename())
}

// String returns the canonical basename.
func (r Record) String() string {
	return r.Basename()
}

// WithDetector returns a copy of the record differing only in Detector.
func (r Record) WithDetector(d Detector) Record {
	r.Detector = d
	return r
}

// DetectorList returns one copy of the record per member of the fixed
// detector set, in canonical enumeration order. It enumerates the
// per-detector variants of an "all detectors" product.
func (r Record) DetectorList() []Record {
	dets := AllDetectors()
	out := make([]Record, len(dets))
	for i, d := range dets {
		out[i] = r.WithDetector(d)
	}
	return out
}
