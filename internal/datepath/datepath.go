package datepath

import (
	"fmt"
	"path/filepath"
	"regexp"
	"time"

	"github.com/skyburst/gbmfn/pkg/gbmfn"
)

// dateIDPattern extracts the six-digit date-id from a UID or raw filename.
// It tolerates an optional trigger marker before the digits and an optional
// sub-index or letter suffix after them.
var dateIDPattern = regexp.MustCompile(`(?i)(?:bn)?(\d{6})(?:\d{3}|_\d{3}|_\d[a-z])?`)

// YMD derives a date-partitioned subdirectory path under base.
//
// value may be:
//   - time.Time: formatted directly
//   - gbmfn.Record or *gbmfn.Record: the date-id is extracted from its UID
//   - string: a raw filename; the date-id is extracted from the name
//
// The six-digit YYMMDD date-id is reinterpreted with a 2000-century year and
// joined onto base as a YYYY-MM-DD directory name. Any other value shape, or
// a string the secondary pattern does not match, fails with
// gbmfn.ErrUnparseableDateSource.
func YMD(base string, value any) (string, error) {
	switch v := value.(type) {
	case time.Time:
		return filepath.Join(base, v.Format(gbmfn.DatePathLayout)), nil
	case gbmfn.Record:
		return fromName(base, v.UID)
	case *gbmfn.Record:
		if v == nil {
			return "", fmt.Errorf("nil record: %w", gbmfn.ErrUnparseableDateSource)
		}
		return fromName(base, v.UID)
	case string:
		return fromName(base, v)
	default:
		return "", fmt.Errorf("value of type %T: %w", value, gbmfn.ErrUnparseableDateSource)
	}
}

func fromName(base, name string) (string, error) {
	m := dateIDPattern.FindStringSubmatch(name)
	if m == nil {
		return "", fmt.Errorf("%q: %w", name, gbmfn.ErrUnparseableDateSource)
	}
	id := m[1]
	// YYMMDD with a fixed 2000-century reinterpretation; no calendar
	// validation beyond the digit shape.
	dir := fmt.Sprintf("20%s-%s-%s", id[0:2], id[2:4], id[4:6])
	return filepath.Join(base, dir), nil
}
