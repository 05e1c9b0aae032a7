package apperr

import (
	"errors"
	"fmt"
)

// Code classifies a failure so handlers and callers can branch without
// string matching.
type Code string

const (
	// Validation failures.
	CodeMissingRequiredFields Code = "MISSING_REQUIRED_FIELDS"
	CodeInvalidEmailFormat    Code = "INVALID_EMAIL_FORMAT"
	CodeInvalidPhoneFormat    Code = "INVALID_PHONE_FORMAT"
	CodeInvalidNumericField   Code = "INVALID_NUMERIC_FIELD"
	CodeDuplicateEmail        Code = "DUPLICATE_EMAIL"

	// Reference failures.
	CodeCustomerNotFound        Code = "CUSTOMER_NOT_FOUND"
	CodeInvalidProductReference Code = "INVALID_PRODUCT_REFERENCE"
	CodeNoProductsSelected      Code = "NO_PRODUCTS_SELECTED"

	// Lookup by unknown id.
	CodeNotFound Code = "NOT_FOUND"

	// Infrastructure failure from the store. Never recovered into a
	// structured result; it fails the whole operation.
	CodeStorage Code = "STORAGE_ERROR"
)

// Error is the structured failure returned at every validation and mutation
// boundary. Message is human-readable and safe to propagate verbatim to the
// transport layer.
type Error struct {
	Code    Code
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Code)
}

func (e *Error) Unwrap() error { return e.Err }

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// NewField tags the failure with the offending field name.
func NewField(code Code, field, message string) *Error {
	return &Error{Code: code, Field: field, Message: message}
}

// Storage wraps an infrastructure error from the entity store.
func Storage(err error) *Error {
	return &Error{Code: CodeStorage, Message: "storage failure", Err: err}
}

// CodeOf extracts the Code from err, or "" if err is not an *Error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

func IsStorage(err error) bool { return CodeOf(err) == CodeStorage }
