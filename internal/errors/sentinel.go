package errors

import "errors"

// ErrNotFound is returned when a lookup resolves to no resource, for example
// a workflow name filter that matches nothing.
var ErrNotFound = errors.New("resource not found")
