package client

import (
	"errors"

	sdkerrors "github.com/genai-factory/genai-factory/client/internal/errors"
)

// The SDK surfaces two failure kinds instead of a single null sentinel:
// *ServerError for controller-rejected requests and *TransportError for
// requests that never got a controller response. Callers branch with the
// helpers below or with errors.As.

// Error type aliases so callers only import the client package.
type (
	ServerError    = sdkerrors.ServerError
	TransportError = sdkerrors.TransportError
)

// ErrNotFound is returned when a lookup resolves to no resource.
var ErrNotFound = sdkerrors.ErrNotFound

// IsServerError reports whether err is a controller rejection and, if so,
// returns it.
func IsServerError(err error) (*ServerError, bool) {
	var se *ServerError
	ok := errors.As(err, &se)
	return se, ok
}

// IsTransportError reports whether err is a network-level failure and, if so,
// returns it.
func IsTransportError(err error) (*TransportError, bool) {
	var te *TransportError
	ok := errors.As(err, &te)
	return te, ok
}

// IsNotFound reports whether err means the resource does not exist, either as
// an HTTP 404 or as the ErrNotFound sentinel.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	if se, ok := IsServerError(err); ok {
		return se.StatusCode == 404
	}
	return false
}
