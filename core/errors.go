package core

import (
	"fmt"

	"github.com/pkg/errors"
)

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return "validation failed"
	}
	return err.Err.Error()
}

// NotFoundError is returned when a referenced row does not exist.
type NotFoundError struct {
	Entity string
	Field  string
	Value  interface{}
}

func NewNotFoundError(entity string, id int64) error {
	return &NotFoundError{Entity: entity, Field: "id", Value: id}
}

// NewNotFoundErrorBy is NewNotFoundError for lookups by a field other than the id.
func NewNotFoundErrorBy(entity, field string, value interface{}) error {
	return &NotFoundError{Entity: entity, Field: field, Value: value}
}

func (err NotFoundError) Error() string {
	return fmt.Sprintf("%s with %s %v does not exist", err.Entity, err.Field, err.Value)
}

// ConflictError is returned when a business rule rejects a write that the store would also refuse.
type ConflictError struct {
	Message string
}

func NewConflictError(msg string) error {
	return &ConflictError{Message: msg}
}

func (err ConflictError) Error() string {
	return err.Message
}

// ConstraintError is a unique, foreign key or check constraint violation raised by the store.
// Detail keeps the store's own message.
type ConstraintError struct {
	Constraint string
	Detail     string
	Err        error
}

func NewConstraintError(constraint, detail string, err error) error {
	return &ConstraintError{Constraint: constraint, Detail: detail, Err: err}
}

func (err ConstraintError) Error() string {
	return err.Detail
}

func (err ConstraintError) Unwrap() error {
	return err.Err
}

// IsNotFound reports whether the cause of err is a NotFoundError.
func IsNotFound(err error) bool {
	_, ok := errors.Cause(err).(*NotFoundError)
	return ok
}

// IsConstraintViolation reports whether the cause of err is a ConstraintError.
func IsConstraintViolation(err error) bool {
	_, ok := errors.Cause(err).(*ConstraintError)
	return ok
}

type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
