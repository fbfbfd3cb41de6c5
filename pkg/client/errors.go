package client

import (
	"fmt"
)

// APIError represents a failed catalog request with additional context.
// StatusCode is zero when the failure happened before a response arrived
// (network errors); Body carries the raw response body for diagnostics.
type APIError struct {
	StatusCode int
	ErrorClass ErrorClass
	Message    string
	Body       string
	Err        error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gutendex %s error: %s: %v",
			e.ErrorClass, e.Message, e.Err)
	}
	return fmt.Sprintf("gutendex %s error (status %d): %s",
		e.ErrorClass, e.StatusCode, e.Message)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *APIError) Unwrap() error {
	return e.Err
}
