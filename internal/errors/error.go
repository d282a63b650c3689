package errors

import (
	stderrors "errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryValidation Category = "validation"
	CategoryNotFound   Category = "notfound"
	CategoryIO         Category = "io"
	CategoryConfig     Category = "config"
	CategoryTimeout    Category = "timeout"
	CategoryServer     Category = "server"
	CategoryCLI        Category = "cli"
)

// LatheError is a structured error with a code, category, suggestions, and
// documentation link.
type LatheError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type (validation, notfound, io, ...).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Path is the file or directory the error refers to, if any.
	Path string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *LatheError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *LatheError) Unwrap() error {
	return e.Wrapped
}

// WithPath records the file or directory the error refers to.
func (e *LatheError) WithPath(path string) *LatheError {
	e.Path = path
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *LatheError) WithSuggestion(s string) *LatheError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *LatheError) WithDetail(d string) *LatheError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *LatheError) Wrap(err error) *LatheError {
	e.Wrapped = err
	return e
}

// New creates a LatheError from a registered error code.
func New(code string) *LatheError {
	template, ok := registry[code]
	if !ok {
		return &LatheError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &LatheError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new LatheError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *LatheError {
	return &LatheError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a LatheError.
func FromError(err error, code string) *LatheError {
	if err == nil {
		return nil
	}
	if le, ok := err.(*LatheError); ok {
		return le
	}
	return New(code).Wrap(err)
}

// CategoryOf returns the category of err, or "" when err carries none.
func CategoryOf(err error) Category {
	var le *LatheError
	if stderrors.As(err, &le) {
		return le.Category
	}
	return ""
}

// IsCategory reports whether err belongs to the given category.
func IsCategory(err error, cat Category) bool { return CategoryOf(err) == cat }

// IsValidation reports whether err is a validation-category error.
func IsValidation(err error) bool { return CategoryOf(err) == CategoryValidation }

// IsNotFound reports whether err is a notfound-category error.
func IsNotFound(err error) bool { return CategoryOf(err) == CategoryNotFound }

// IsIO reports whether err is an io-category error.
func IsIO(err error) bool { return CategoryOf(err) == CategoryIO }

// IsConfig reports whether err is a config-category error.
func IsConfig(err error) bool { return CategoryOf(err) == CategoryConfig }

// IsTimeout reports whether err is a timeout-category error.
func IsTimeout(err error) bool { return CategoryOf(err) == CategoryTimeout }
