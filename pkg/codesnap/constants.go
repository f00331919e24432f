package codesnap

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // Snapshot written successfully
	ExitGeneralError = 1  // Unknown or unclassified error
	ExitUsageError   = 2  // CLI usage error (invalid arguments or flags)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitConfigError  = 10 // Invalid configuration
	ExitRootError    = 11 // Scan root missing, unreadable or not a directory
	ExitWalkFailed   = 12 // Traversal aborted under the abort walk-error policy
	ExitWriteFailed  = 13 // Output file could not be written
)

const (
	// DefaultOutputPath is the snapshot file written when no output is configured.
	// Relative paths resolve against the current working directory.
	DefaultOutputPath = "code_snapshot.json"

	// DefaultRoot is the scan root used when none is configured.
	DefaultRoot = "."

	// ReadErrorPrefix starts every snapshot value that records a failed read
	// instead of file content.
	ReadErrorPrefix = "ERROR: "

	// OutputIndent is the per-level indentation of the persisted JSON document.
	OutputIndent = "  "

	// OutputFileMode is the permission used when creating the snapshot file.
	OutputFileMode = 0644
)

// DefaultExtensions is the allow-list used when none is configured:
// common web and scripting sources plus structured data.
var DefaultExtensions = []string{".js", ".jsx", ".ts", ".tsx", ".css", ".json"}
