// Package domain holds the entities of the booking service together
// with the sentinel error kinds shared across layers. Services wrap
// these sentinels with context, handlers match them with errors.Is to
// pick an HTTP status, so the same failure always maps to the same
// code.
package domain

import "errors"

// ErrNotFound is returned when a referenced enrollment, ticket, hotel,
// room or booking does not exist.
var ErrNotFound = errors.New("not found")

// ErrBadRequest is returned for malformed or missing identifier
// arguments (zero, negative, non-numeric).
var ErrBadRequest = errors.New("bad request")

// ErrUnauthorized is returned when the caller does not own the resource
// they are trying to mutate.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden is returned when the caller is not entitled to book,
// already holds a booking, targets a room at capacity, or requests a
// same-room reassignment.
var ErrForbidden = errors.New("forbidden")
