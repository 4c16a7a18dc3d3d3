package errors

import "errors"

// NewServerError builds a ServerError, falling back to a generic message when
// the controller did not provide one.
func NewServerError(statusCode int, message string) *ServerError {
	return &ServerError{StatusCode: statusCode, Message: message}
}

// NewTransportError wraps a network-level failure for operation op.
func NewTransportError(op string, err error) *TransportError {
	return &TransportError{Op: op, Err: err}
}

// Classify maps an SDK error to its retry category.
//
//   - transport failures are recoverable; they may be transient
//   - 408 Request Timeout and 429 Too Many Requests are recoverable
//   - 5xx server errors are recoverable
//   - remaining 4xx client errors are irrecoverable
func Classify(err error) ErrorCategory {
	var se *ServerError
	if errors.As(err, &se) {
		return categoryForStatus(se.StatusCode)
	}
	var te *TransportError
	if errors.As(err, &te) {
		return Recoverable
	}
	// Unknown errors (request construction, marshalling) will not improve
	// on retry.
	return Irrecoverable
}

func categoryForStatus(statusCode int) ErrorCategory {
	switch {
	case statusCode >= 400 && statusCode < 500:
		switch statusCode {
		case 408, 429:
			return Recoverable
		default:
			return Irrecoverable
		}
	case statusCode >= 500 && statusCode < 600:
		return Recoverable
	default:
		return Recoverable
	}
}
