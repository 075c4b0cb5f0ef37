package gbmfn

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	rec, err := filename.FromPath(p)
//	if errors.Is(err, gbmfn.ErrNoMatch) {
//	    // Not a canonical filename; skip or report depending on policy.
//	}
var (
	// ErrNoMatch indicates a string does not conform to the canonical
	// filename grammar. Parsing never produces a partial record.
	ErrNoMatch = errors.New("name does not match the canonical filename grammar")

	// ErrInvalidDetector indicates a detector code, name, or index could
	// not be resolved against the fixed detector set.
	ErrInvalidDetector = errors.New("invalid detector")

	// ErrUnknownField indicates record construction was given a field name
	// that is not part of the record schema.
	ErrUnknownField = errors.New("unknown record field")

	// ErrInvalidVersion indicates a version outside the two-digit range [0, 99].
	ErrInvalidVersion = errors.New("version outside [0, 99]")

	// ErrUnparseableDateSource indicates date-path resolution was given a
	// value from which no date could be extracted.
	ErrUnparseableDateSource = errors.New("unparseable date source")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrNoMatch):
		return ExitNoMatch
	case errors.Is(err, ErrInvalidDetector):
		return ExitInvalidDetector
	case errors.Is(err, ErrUnparseableDateSource):
		return ExitBadDateSource
	case errors.Is(err, ErrInvalidConfig), errors.Is(err, ErrUnknownField), errors.Is(err, ErrInvalidVersion):
		return ExitConfigError
	}

	// Cobra reports flag/argument misuse as plain errors; classify the
	// common patterns as usage errors.
	errStr := err.Error()
	if strings.HasPrefix(errStr, "unknown flag") ||
		strings.HasPrefix(errStr, "unknown shorthand flag") ||
		strings.HasPrefix(errStr, "unknown command") ||
		strings.Contains(errStr, "arg(s), received") ||
		strings.HasPrefix(errStr, "required flag") ||
		strings.HasPrefix(errStr, "invalid argument") {
		return ExitUsageError
	}

	return ExitGeneralError
}
