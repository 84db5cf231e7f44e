package services

import (
	"errors"
	"fmt"
)

// Typed outcomes shared by the services. Controllers match these with
// errors.Is / errors.As and map them to HTTP statuses; anything else is a
// store failure and propagates untouched.
var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// ValidationError reports malformed input on a single field. Values are
// never silently coerced into range.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// BlockedError is a delete refused by the delete guard because dependent
// reviews exist. The entity itself was found; distinct from ErrNotFound.
type BlockedError struct {
	Reason string
}

func (e *BlockedError) Error() string {
	return e.Reason
}
