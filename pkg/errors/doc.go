// Package errors provides structured error types used across the validator.
//
// Errors carry a code for programmatic handling, so callers such as the batch
// runner can tell a missing dataset apart from a misbehaving configuration
// service without matching on message text.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeUnavailable,
//	    "failed to fetch parameter configuration",
//	    cause,
//	    map[string]any{
//	        "url": url,
//	    },
//	)
package errors
