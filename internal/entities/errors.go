package entities

import (
	"errors"
	"fmt"
)

var (
	ErrValidation     = errors.New("invalid payment request")
	ErrInitialization = errors.New("payment initialization failed")
	ErrSigning        = errors.New("payment signing failed")
	ErrSubmission     = errors.New("payment submission failed")

	ErrAttemptNotFound   = errors.New("payment attempt not found")
	ErrPaymentInFlight   = errors.New("payment already in progress")
	ErrVerification      = errors.New("payment verification failed")
	ErrInvalidTransition = errors.New("invalid payment status transition")

	ErrCallbackMismatch     = errors.New("callback does not match the payment attempt")
	ErrDuplicateTransaction = errors.New("transaction id already used by another attempt")

	ErrUnauthenticated = errors.New("missing bearer token")
	ErrForbidden       = errors.New("payer is not accessible to the caller")
)

// InitializationError carries the backend's message as is.
type InitializationError struct {
	Status  int
	Message string
}

func (e *InitializationError) Error() string {
	return e.Message
}

func (e *InitializationError) Unwrap() error {
	return ErrInitialization
}

func validationErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
