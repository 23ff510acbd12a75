package domain

import "errors"

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrServiceNotFound     = errors.New("service not found")
	ErrConflictNotFound    = errors.New("conflict not found")
	ErrUserNotFound        = errors.New("user not found")
)

// Booking-time rejections.
var (
	ErrAdvisoryLockTimeout = errors.New("slot is being booked by another request")
	ErrSlotConflict        = errors.New("slot unavailable: overlapping reservation exists")
	ErrInvalidQuantity     = errors.New("quantity must be positive")
	ErrInvalidPoints       = errors.New("points used must not be negative")
	ErrInsufficientAmount  = errors.New("total amount is insufficient for requested points")
)

// Database contention. ErrDeadlockDetected never leaves the service layer:
// the retry coordinator either recovers or converts it to ErrDeadlockRetryExceeded.
var (
	ErrDeadlockDetected      = errors.New("deadlock detected")
	ErrLockTimeout           = errors.New("lock wait timeout exceeded")
	ErrDeadlockRetryExceeded = errors.New("deadlock retry limit exceeded")
)

var (
	ErrInvalidTransition       = errors.New("invalid status transition")
	ErrPaymentNotCompleted     = errors.New("payment must be completed before this transition")
	ErrConflictAlreadyResolved = errors.New("conflict is already resolved")
)

var (
	ErrValidation = errors.New("validation error")
)

const (
	CodeAdvisoryLockTimeout   = "ADVISORY_LOCK_TIMEOUT"
	CodeSlotConflict          = "SLOT_CONFLICT"
	CodeServiceNotFound       = "SERVICE_NOT_FOUND"
	CodeInvalidQuantity       = "INVALID_QUANTITY"
	CodeInvalidPoints         = "INVALID_POINTS"
	CodeInsufficientAmount    = "INSUFFICIENT_AMOUNT"
	CodeLockTimeout           = "LOCK_TIMEOUT"
	CodeDeadlockRetryExceeded = "DEADLOCK_RETRY_EXCEEDED"
	CodePaymentNotCompleted   = "PAYMENT_NOT_COMPLETED"
	CodeInvalidTransition     = "INVALID_TRANSITION"
	CodeAlreadyResolved       = "ALREADY_RESOLVED"
	CodeNotFound              = "NOT_FOUND"
	CodeValidation            = "VALIDATION"
	CodeInternal              = "INTERNAL"
)

var codes = []struct {
	err  error
	code string
}{
	{ErrAdvisoryLockTimeout, CodeAdvisoryLockTimeout},
	{ErrSlotConflict, CodeSlotConflict},
	{ErrServiceNotFound, CodeServiceNotFound},
	{ErrInvalidQuantity, CodeInvalidQuantity},
	{ErrInvalidPoints, CodeInvalidPoints},
	{ErrInsufficientAmount, CodeInsufficientAmount},
	{ErrLockTimeout, CodeLockTimeout},
	{ErrDeadlockRetryExceeded, CodeDeadlockRetryExceeded},
	{ErrPaymentNotCompleted, CodePaymentNotCompleted},
	{ErrInvalidTransition, CodeInvalidTransition},
	{ErrConflictAlreadyResolved, CodeAlreadyResolved},
	{ErrReservationNotFound, CodeNotFound},
	{ErrConflictNotFound, CodeNotFound},
	{ErrUserNotFound, CodeNotFound},
	{ErrValidation, CodeValidation},
}

// Code maps an error chain to its stable machine-readable code.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return CodeInternal
}

// IsTransient reports contention errors the caller may retry later,
// as opposed to conflicts and validation failures that need a different request.
func IsTransient(err error) bool {
	return errors.Is(err, ErrAdvisoryLockTimeout) ||
		errors.Is(err, ErrLockTimeout) ||
		errors.Is(err, ErrDeadlockRetryExceeded)
}
