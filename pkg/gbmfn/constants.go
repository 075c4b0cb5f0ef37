package gbmfn

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Operation completed successfully
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid configuration
	ExitNoMatch         = 20 // Name does not conform to the canonical filename grammar
	ExitInvalidDetector = 21 // Detector code, name, or index could not be resolved
	ExitBadDateSource   = 22 // Date-path resolution given an unsupported value
)

const (
	// FilePrefix is the fixed leading token of every canonical filename.
	FilePrefix = "glg"

	// TriggerMarker prefixes the UID of trigger-style data products.
	// Its absence marks daily/continuous products.
	TriggerMarker = "bn"

	// AllDetectorsToken is the grammar's sentinel for "no specific detector".
	// It never appears in a Record; DetectorAll represents it instead.
	AllDetectorsToken = "all"

	// DefaultExtension is used when a Record is built without an explicit extension.
	DefaultExtension = "fit"

	// DatePathLayout is the layout of date-partitioned subdirectory names
	// produced by the date-path resolver.
	DatePathLayout = "2006-01-02"
)
