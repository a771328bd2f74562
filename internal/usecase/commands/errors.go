package commands

import (
	"fitcoach-booking/internal/pkg/errs"
)

var (
	ErrInvalidInput            = errs.New("invalid input")
	ErrForbidden               = errs.New("forbidden")
	ErrSlotGone                = errs.New("someone else already booked this time")
	ErrSlotNotFound            = errs.New("slot not found")
	ErrAppointmentNotFound     = errs.New("appointment not found")
	ErrPreconditionFailed      = errs.New("appointment status precondition failed")
	ErrCreditExhausted         = errs.ErrCreditExhausted
	ErrCreditOutOfSync         = errs.New("member credit has no consumed session to release")
	ErrMemberNotFound          = errs.New("member not found")
	ErrNotificationNotFound    = errs.New("notification not found")
	ErrDuplicateRequest        = errs.New("idempotency key reused with a different request")
	ErrRequestInProgress       = errs.New("request with this idempotency key is in progress")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

var useCaseErrors = []error{
	ErrInvalidInput,
	ErrForbidden,
	ErrSlotGone,
	ErrSlotNotFound,
	ErrAppointmentNotFound,
	ErrPreconditionFailed,
	ErrCreditExhausted,
	ErrCreditOutOfSync,
	ErrMemberNotFound,
	ErrNotificationNotFound,
	ErrDuplicateRequest,
	ErrRequestInProgress,
}

// markUnexpected tags anything that is not a use-case error as a database failure.
func markUnexpected(err error) error {
	for _, known := range useCaseErrors {
		if errs.Is(err, known) {
			return err
		}
	}
	return errs.Mark(err, ErrDatabaseOperationFailed)
}
