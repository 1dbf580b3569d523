package provider

import (
	"errors"
	"fmt"
)

// Sentinel errors distinguishing the failure modes of a generation call.
// Callers surface all of them as a failed operation and never auto-retry.
var (
	// ErrUnavailable wraps transport-level failures (connect, timeout).
	ErrUnavailable = errors.New("generation service unavailable")
	// ErrDecode marks a response body that is not valid JSON.
	ErrDecode = errors.New("generation response is not valid JSON")
	// ErrUnrecognizedShape marks a syntactically valid response that matches
	// none of the known shape variants. Never coerced to an empty result.
	ErrUnrecognizedShape = errors.New("generation response shape not recognized")
	// ErrEmptyResult marks a well-formed response that carried no items, kept
	// apart from decode failures: the provider answered, it just produced
	// nothing usable.
	ErrEmptyResult = errors.New("generation produced no results")
)

// StatusError reports a non-2xx webhook response.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("generation request failed with status %d", e.Code)
	}
	return fmt.Sprintf("generation request failed with status %d: %s", e.Code, e.Message)
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}
