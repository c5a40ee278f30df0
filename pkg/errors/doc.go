// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeNetwork,
//	    "failed to fetch release index",
//	    cause,
//	    map[string]interface{}{
//	        "url":    url,
//	        "status": resp.StatusCode,
//	    },
//	)
package errors
