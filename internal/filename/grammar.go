package filename

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/skyburst/gbmfn/pkg/gbmfn"
)

// pattern is the canonical filename grammar, anchored at both ends and
// matched case-insensitively against a basename. Groups, in order:
// data_type, detector, trigger, uid, meta, version, extension.
//
// The UID alternation admits the three accepted shapes: a nine-digit trigger
// identifier, a six-digit date-id with a three-digit sub-index, a six-digit
// date-id with a digit+letter suffix, or a six-digit date-id alone.
var pattern = regexp.MustCompile(
	`(?i)^glg_(?P<data_type>.+)_(?P<detector>[bn][0-9ab]|all)_` +
		`(?P<trigger>bn)?(?P<uid>\d{9}|\d{6}_\d{3}|\d{6}_\d[a-z]|\d{6})` +
		`(?P<meta>_.+?)?_v(?P<version>\d{2})\.(?P<extension>.+)$`)

var (
	idxDataType  = pattern.SubexpIndex("data_type")
	idxDetector  = pattern.SubexpIndex("detector")
	idxTrigger   = pattern.SubexpIndex("trigger")
	idxUID       = pattern.SubexpIndex("uid")
	idxMeta      = pattern.SubexpIndex("meta")
	idxVersion   = pattern.SubexpIndex("version")
	idxExtension = pattern.SubexpIndex("extension")
)

// Parse matches basename against the canonical grammar and returns the
// populated record. The Directory field is left empty; use FromPath when the
// input carries a directory component.
//
// Returns gbmfn.ErrNoMatch when basename does not conform.
func Parse(basename string) (gbmfn.Record, error) {
	m := pattern.FindStringSubmatch(basename)
	if m == nil {
		return gbmfn.Record{}, fmt.Errorf("%q: %w", basename, gbmfn.ErrNoMatch)
	}

	det, err := gbmfn.DetectorFromName(m[idxDetector])
	if err != nil {
		// The pattern's detector alternation is a superset of the real
		// detector set only in casing; resolution failure here means the
		// grammar and the detector table have drifted apart.
		return gbmfn.Record{}, fmt.Errorf("%q: %w", basename, err)
	}

	// Exactly two digits per the grammar; cannot fail.
	version, _ := strconv.Atoi(m[idxVersion])

	return gbmfn.Record{
		DataType:  m[idxDataType],
		Detector:  det,
		Trigger:   m[idxTrigger] != "",
		UID:       m[idxUID],
		Meta:      m[idxMeta],
		Version:   version,
		Extension: m[idxExtension],
	}, nil
}

// FromPath splits path into directory and basename, parses the basename, and
// sets the record's Directory to the path's directory component (empty when
// the path has none).
//
// Returns gbmfn.ErrNoMatch when the basename does not conform; callers decide
// with errors.Is whether absence is an error.
func FromPath(path string) (gbmfn.Record, error) {
	dir, base := filepath.Split(path)
	rec, err := Parse(base)
	if err != nil {
		return gbmfn.Record{}, err
	}
	if dir != "" {
		rec.Directory = filepath.Clean(dir)
	}
	return rec, nil
}
