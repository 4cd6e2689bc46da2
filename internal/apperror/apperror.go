package apperror

import (
	"errors"
	"fmt"
)

// Error kinds. Use errors.Is to classify an error returned by the repository or a flow.
var (
	ErrConfiguration = errors.New("configuration error")
	ErrFetch         = errors.New("fetch error")
	ErrCreate        = errors.New("create error")
	ErrUpdate        = errors.New("update error")
	ErrValidation    = errors.New("validation error")
)

// AppError carries an error kind, a human-readable message and, optionally,
// the underlying cause and the form field that failed.
type AppError struct {
	Kind    error  // one of the Err* kinds above
	Message string // shown to the user
	Field   string // optional: form field causing the error
	Err     error  // optional: underlying cause
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *AppError) Unwrap() []error {
	errs := []error{e.Kind}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func Configuration(message string) *AppError {
	return &AppError{
		Kind:    ErrConfiguration,
		Message: message,
	}
}

func Fetch(err error) *AppError {
	return &AppError{
		Kind:    ErrFetch,
		Message: "failed to fetch snippets",
		Err:     err,
	}
}

func Create(err error) *AppError {
	return &AppError{
		Kind:    ErrCreate,
		Message: "failed to add snippet",
		Err:     err,
	}
}

func Update(err error) *AppError {
	return &AppError{
		Kind:    ErrUpdate,
		Message: "failed to update usage count",
		Err:     err,
	}
}

// Validation reports a form field that failed its constraints. No network call
// is made when one of these is produced.
func Validation(field, message string) *AppError {
	return &AppError{
		Kind:    ErrValidation,
		Message: message,
		Field:   field,
	}
}

// FieldOf returns the offending field of a validation error, or "" for any
// other error.
func FieldOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Field
	}
	return ""
}
