package errs

import "strings"

// Sentinel errors shared by the usecase and handler layers.
// Attach them with Mark and match them with Is.
var (
	// Request errors
	ErrValidation = New("validation failed")
	ErrForbidden  = New("forbidden")

	// Benefit errors
	ErrBenefitNotFound  = New("benefit not found")
	ErrDuplicateBenefit = New("duplicate benefit")

	// Points errors
	ErrClientNotFound     = New("client not found")
	ErrInsufficientPoints = New("insufficient points")
	ErrIneligibleBenefit  = New("benefit not eligible")

	// Order errors
	ErrOrderNotFound         = New("order not found")
	ErrOrderAlreadyClosed    = New("order already closed")
	ErrProductNotFound       = New("product not found")
	ErrBenefitNotApplicable  = New("benefit not applicable to order")
	ErrIdempotencyInProgress = New("idempotency in progress")
	ErrIdempotencyMismatch   = New("idempotency key reused with different request")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
)

// DuplicateError names the fields that make a benefit collide with a live one.
type DuplicateError struct {
	Fields []string
}

func (e *DuplicateError) Error() string {
	return "duplicate benefit: " + strings.Join(e.Fields, ", ")
}

func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicateBenefit
}

// IneligibleError carries why a benefit cannot be redeemed right now.
type IneligibleError struct {
	Reason string
}

func (e *IneligibleError) Error() string {
	return "benefit not eligible: " + e.Reason
}

func (e *IneligibleError) Is(target error) bool {
	return target == ErrIneligibleBenefit
}
