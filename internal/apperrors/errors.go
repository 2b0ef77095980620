package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller lacks permission for the operation.
var ErrForbidden = errors.New("forbidden")

// ErrMissingExchangeRate indicates a cross-currency conversion was requested
// without a positive exchange rate being supplied.
var ErrMissingExchangeRate = errors.New("exchange rate missing for cross-currency conversion")

// ErrPriceExceedsMaximum indicates the computed sale price exceeds the configured
// maximum price; the whole calculation is rejected, nothing is returned.
var ErrPriceExceedsMaximum = errors.New("computed price exceeds maximum price")

// ErrNonPositiveSalePrice indicates a realized-margin calculation was given a
// sale price that is zero or negative.
var ErrNonPositiveSalePrice = errors.New("sale price must be positive")

// ErrNonPositiveCost indicates a margin calculation was given a cost that is
// zero or negative.
var ErrNonPositiveCost = errors.New("cost must be positive")

// FieldViolation describes a single invalid input field.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every field violation found in an input record so
// the caller can present the complete list at once instead of fixing fields
// one at a time.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = fmt.Sprintf("%s: %s", v.Field, v.Message)
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(msgs, "; "))
}

// Is makes errors.Is(err, ErrValidation) match a *ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError builds a ValidationError from the given violations.
func NewValidationError(violations []FieldViolation) *ValidationError {
	return &ValidationError{Violations: violations}
}
