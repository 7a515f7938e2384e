package shared

import (
	"errors"
	"fmt"
)

// Domain error taxonomy shared by all services and handlers.
// Every failing operation returns exactly one of these three kinds so the
// HTTP layer can map them to status codes without string matching.

// NotFoundError means a referenced entity (user, book, borrowing, review)
// does not exist.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// ConflictError means a uniqueness or availability rule was violated:
// duplicate ISBN, duplicate email, duplicate active borrowing, no copies
// available.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return e.Reason
}

// InvalidInputError means a request field is malformed or out of range,
// e.g. a rating outside 1-5.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NotFound(entity string) error {
	return &NotFoundError{Entity: entity}
}

func Conflict(reason string) error {
	return &ConflictError{Reason: reason}
}

func InvalidInput(field, reason string) error {
	return &InvalidInputError{Field: field, Reason: reason}
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}

func IsInvalidInput(err error) bool {
	var ii *InvalidInputError
	return errors.As(err, &ii)
}
