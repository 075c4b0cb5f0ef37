package filename

import (
	"errors"
	"fmt"
	"strings"

	"github.com/skyburst/gbmfn/pkg/gbmfn"
)

// Fields carries caller-supplied record fields by name for New. The schema is
// closed: the recognized keys are exactly
//
//	data_type, detector, trigger, uid, meta, version, extension, directory
//
// and anything else fails with gbmfn.ErrUnknownField. The "detector" value
// may be a gbmfn.Detector, a string (short code or full name), or an int
// (numeric index); each resolves through the detector normalizer.
type Fields map[string]any

// New builds a record from caller-supplied fields and validates the
// combination once, at construction time. The returned record is treated as
// immutable afterwards.
//
// Defaults: extension gbmfn.DefaultExtension, version 0, detector
// gbmfn.DetectorAll, everything else empty.
//
// Validation:
//   - unrecognized field names fail with gbmfn.ErrUnknownField
//   - unresolvable detectors fail with gbmfn.ErrInvalidDetector
//   - versions outside [0, 99] fail with gbmfn.ErrInvalidVersion
//   - a non-empty meta is normalized to carry its leading underscore
func New(fields Fields) (gbmfn.Record, error) {
	rec := gbmfn.Record{Extension: gbmfn.DefaultExtension}

	for name, value := range fields {
		switch name {
		case "data_type":
			s, err := stringField(name, value)
			if err != nil {
				return gbmfn.Record{}, err
			}
			rec.DataType = s
		case "detector":
			det, err := resolveDetector(value)
			if err != nil {
				return gbmfn.Record{}, err
			}
			rec.Detector = det
		case "trigger":
			b, ok := value.(bool)
			if !ok {
				return gbmfn.Record{}, fmt.Errorf("field %q: expected bool, got %T: %w", name, value, gbmfn.ErrInvalidConfig)
			}
			rec.Trigger = b
		case "uid":
			s, err := stringField(name, value)
			if err != nil {
				return gbmfn.Record{}, err
			}
			rec.UID = s
		case "meta":
			s, err := stringField(name, value)
			if err != nil {
				return gbmfn.Record{}, err
			}
			if s != "" && !strings.HasPrefix(s, "_") {
				s = "_" + s
			}
			rec.Meta = s
		case "version":
			v, ok := value.(int)
			if !ok {
				return gbmfn.Record{}, fmt.Errorf("field %q: expected int, got %T: %w", name, value, gbmfn.ErrInvalidConfig)
			}
			if v < 0 || v > 99 {
				return gbmfn.Record{}, fmt.Errorf("version %d: %w", v, gbmfn.ErrInvalidVersion)
			}
			rec.Version = v
		case "extension":
			s, err := stringField(name, value)
			if err != nil {
				return gbmfn.Record{}, err
			}
			if s != "" {
				rec.Extension = strings.TrimPrefix(s, ".")
			}
		case "directory":
			s, err := stringField(name, value)
			if err != nil {
				return gbmfn.Record{}, err
			}
			rec.Directory = s
		default:
			return gbmfn.Record{}, fmt.Errorf("field %q: %w", name, gbmfn.ErrUnknownField)
		}
	}

	return rec, nil
}

// resolveDetector normalizes the three accepted constructor shapes for the
// detector field.
func resolveDetector(value any) (gbmfn.Detector, error) {
	switch v := value.(type) {
	case gbmfn.Detector:
		if !v.IsValid() {
			return gbmfn.DetectorAll, fmt.Errorf("detector %d: %w", int(v), gbmfn.ErrInvalidDetector)
		}
		return v, nil
	case string:
		return gbmfn.DetectorFromName(v)
	case int:
		return gbmfn.DetectorFromIndex(v)
	default:
		return gbmfn.DetectorAll, fmt.Errorf("field \"detector\": expected Detector, string, or int, got %T: %w", value, gbmfn.ErrInvalidDetector)
	}
}

func stringField(name string, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("field %q: expected string, got %T: %w", name, value, gbmfn.ErrInvalidConfig)
	}
	return s, nil
}

// ListFromPaths bulk-parses a sequence of paths into records.
//
// The unknown policy is selected by the unknown argument: when non-nil,
// unparseable paths are appended to the caller-provided side list and the
// batch continues; when nil, the first unparseable path aborts the batch with
// an error identifying it (wrapping gbmfn.ErrNoMatch).
func ListFromPaths(paths []string, unknown *[]string) ([]gbmfn.Record, error) {
	records := make([]gbmfn.Record, 0, len(paths))
	for _, p := range paths {
		rec, err := FromPath(p)
		if err != nil {
			if unknown != nil && errors.Is(err, gbmfn.ErrNoMatch) {
				*unknown = append(*unknown, p)
				continue
			}
			return nil, fmt.Errorf("path %s: %w", p, err)
		}
		records = append(records, rec)
	}
	return records, nil
}
