package loans

import "errors"

var (
	// ErrInvalidPayment indicates a payment submission failed validation.
	ErrInvalidPayment = errors.New("invalid payment")
	// ErrInvalidLoan indicates a loan submission failed validation.
	ErrInvalidLoan = errors.New("invalid loan")
)
