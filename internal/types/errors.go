package types

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound       = errors.New("requested item not found")
	ErrInvalidRequest = errors.New("invalid request")
	ErrConflict       = errors.New("item already exists or conflict")
)

// NotFoundError names the entity and key that could not be resolved so
// handlers and chat responses can tell the caller exactly what was missing.
type NotFoundError struct {
	Field string // request field, e.g. "origin_city"
	Key   string // the identifier the caller supplied
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %q", e.Field, e.Key)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// InvalidRequestError marks a malformed or contradictory request. It aborts
// the whole recommendation; no partial result is returned.
type InvalidRequestError struct {
	Field  string
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("invalid request field %s: %s", e.Field, e.Reason)
}

func (e *InvalidRequestError) Is(target error) bool { return target == ErrInvalidRequest }
