package db

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// NotFoundError indicates that a referenced record does not exist
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

// IsNotFound reports whether err wraps a NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// ValidationError indicates that a record is missing mandatory fields or has
// malformed values. It is raised before the record ever reaches the database.
type ValidationError struct {
	Entity string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Entity, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err wraps a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ValidateReten checks the mandatory reten fields (name, DNI, phone, status)
func ValidateReten(r *Reten) error {
	if err := validate.Struct(r); err != nil {
		return &ValidationError{Entity: "reten", Err: err}
	}
	return nil
}

// ValidateAssignment checks the mandatory assignment fields. End before start
// is deliberately not rejected here; reports sum the duration as-is.
func ValidateAssignment(a *Assignment) error {
	if err := validate.Struct(a); err != nil {
		return &ValidationError{Entity: "assignment", Err: err}
	}
	return nil
}
