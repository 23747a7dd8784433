// Package errors provides error handling conventions for the presetctl CLI.
//
// This package defines sentinel errors for common failure conditions,
// an ExitError type for CLI exit code handling, and exit code constants
// following standard Unix conventions.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [errors.Is]:
//
//	if errors.Is(err, perrors.ErrNotFound) {
//	    // handle missing preset
//	}
//
// [ErrFormatMismatch] is the one failure the reconciler surfaces for a
// document-level problem: the file exists and parses, but its root marker
// does not identify it as a settings document. Per-setting mismatches are
// never surfaced as errors.
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid input, configuration, etc.)
//   - ExitSystem (2): System-related error (I/O, disk, permissions, etc.)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion for CLI applications. It supports error unwrapping via
// [errors.Unwrap] and [errors.As].
package errors
