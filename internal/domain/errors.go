package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repositories when a lookup matches nothing.
var ErrNotFound = errors.New("not found")

// ValidationCode identifies a user-input rejection.
type ValidationCode string

const (
	CodePastCheckIn        ValidationCode = "PastCheckIn"
	CodeInvalidRange       ValidationCode = "InvalidRange"
	CodeCapacityExceeded   ValidationCode = "CapacityExceeded"
	CodeListingNotFound    ValidationCode = "ListingNotFound"
	CodeListingUnavailable ValidationCode = "ListingUnavailable"
	CodeInvalidPrice       ValidationCode = "InvalidPrice"
	CodeInvalidRating      ValidationCode = "InvalidRating"
	CodeDuplicateReview    ValidationCode = "DuplicateReview"
)

// ValidationError is a user-input-class failure. It names the offending
// field so the transport layer can produce a field-keyed error body.
// These errors are never process-fatal.
type ValidationError struct {
	Code    ValidationCode
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(code ValidationCode, field, message string) *ValidationError {
	return &ValidationError{Code: code, Field: field, Message: message}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
