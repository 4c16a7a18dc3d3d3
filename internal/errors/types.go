// Package errors defines the two failure kinds surfaced by the SDK and the
// recoverability classification used by the optional retry policy.
package errors

import "fmt"

// ServerError reports a request the controller answered but rejected: a
// non-2xx status, or a 2xx envelope with success=false. Message carries the
// server-provided error text when one was present.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("controller returned HTTP %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("controller returned HTTP %d", e.StatusCode)
}

// TransportError reports a request that never produced a controller response:
// connection failures, timeouts, malformed replies.
type TransportError struct {
	Op  string // operation label, e.g. "users.get"
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport error: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *TransportError) Unwrap() error { return e.Err }

// ErrorCategory determines how a failure should be handled by retry logic.
type ErrorCategory int

const (
	// Recoverable failures may succeed on a later attempt.
	Recoverable ErrorCategory = iota

	// Irrecoverable failures will keep failing and must not be retried.
	Irrecoverable
)

func (c ErrorCategory) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}
