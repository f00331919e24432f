package codesnap

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	_, err := svc.Run(cfg)
//	if errors.Is(err, codesnap.ErrWriteFailed) {
//	    // Output path was not writable
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidRoot indicates the scan root does not exist, cannot be read,
	// or is not a directory.
	ErrInvalidRoot = errors.New("invalid scan root")

	// ErrWalkFailed indicates traversal stopped on a directory-level error
	// under WalkAbort.
	ErrWalkFailed = errors.New("directory traversal failed")

	// ErrWriteFailed indicates the snapshot could not be persisted.
	ErrWriteFailed = errors.New("failed to write snapshot")
)

// usageErrorPatterns are message fragments cobra and pflag produce for
// command-line misuse.
var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts at most",
	"accepts 1 arg(s)",
	"invalid argument",
	"flag needs an argument",
	"required flag",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrInvalidRoot):
		return ExitRootError
	case errors.Is(err, ErrWalkFailed):
		return ExitWalkFailed
	case errors.Is(err, ErrWriteFailed):
		return ExitWriteFailed
	}

	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
