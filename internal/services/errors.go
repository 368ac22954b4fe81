// internal/services/errors.go
package services

import "errors"

// Failure taxonomy surfaced to handlers. Every component-level failure
// maps to exactly one of these (or is wrapped as an internal error);
// nothing is retried inside the services.
var (
	ErrNotFound         = errors.New("resource not found")
	ErrForbidden        = errors.New("access denied")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrInvalidStatus    = errors.New("invalid status transition")
	ErrPaymentCompleted = errors.New("payment already completed for this order")
	ErrAlreadySeeded    = errors.New("catalog already seeded")
)
