package core

import "errors"

// Sentinel errors for common error conditions.
// These can be used with errors.Is() for error type checking.
var (
	// ErrInputDirMissing indicates the input directory was not supplied
	ErrInputDirMissing = errors.New("input directory not configured")

	// ErrOutputDirMissing indicates the output directory was not supplied
	ErrOutputDirMissing = errors.New("output directory not configured")

	// ErrWaitTimeout indicates the input-arrival wait elapsed before any entry appeared
	ErrWaitTimeout = errors.New("timed out waiting for input directory entries")

	// ErrRunNotFound indicates a purge found no links for the given run identifier
	ErrRunNotFound = errors.New("no links found for run")
)

// Error message templates for formatted errors.
// Use with fmt.Errorf() to create errors with context.
const (
	// ErrInputDirInaccessibleMsg is the message for an unlistable input directory
	ErrInputDirInaccessibleMsg = "input directory inaccessible: %s: %v"

	// ErrOutputDirNotWritableMsg is the message for a failed output probe write
	ErrOutputDirNotWritableMsg = "output directory not writable: %s: %v"

	// ErrPolicyMismatchMsg is the message for a connectivity-policy breach
	ErrPolicyMismatchMsg = "connectivity policy mismatch: mode=%s expected=%t observed=%t"

	// ErrLinkFailedMsg is the message for a single failed link creation
	ErrLinkFailedMsg = "link %s failed: %v"
)
