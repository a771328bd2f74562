package httperr

import (
	"net/http"

	"fitcoach-booking/internal/pkg/errs"
	"fitcoach-booking/internal/usecase/commands"
	"fitcoach-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type mapping struct {
	targets []error
	status  int
	message string
}

// Order matters: the first matching row wins.
var mappings = []mapping{
	{[]error{commands.ErrSlotGone}, http.StatusConflict, "Someone else already booked this time"},
	{[]error{commands.ErrPreconditionFailed}, http.StatusConflict, "The appointment has already changed, please refresh"},
	{[]error{commands.ErrCreditOutOfSync}, http.StatusConflict, "Session credit is out of sync, please contact your coach"},
	{[]error{commands.ErrRequestInProgress}, http.StatusConflict, "The same request is still being processed"},
	{[]error{commands.ErrCreditExhausted}, http.StatusUnprocessableEntity, "No sessions remaining"},
	{[]error{commands.ErrDuplicateRequest}, http.StatusUnprocessableEntity, "Idempotency key was already used for a different request"},
	{
		[]error{
			commands.ErrSlotNotFound,
			commands.ErrAppointmentNotFound,
			commands.ErrMemberNotFound,
			commands.ErrNotificationNotFound,
			queries.ErrAppointmentNotFound,
			queries.ErrMemberNotFound,
			queries.ErrUserNotFound,
		},
		http.StatusNotFound, "Not found",
	},
	{
		[]error{
			commands.ErrForbidden,
			queries.ErrAppointmentAccess,
			queries.ErrCreditAccess,
			queries.ErrUserInactive,
		},
		http.StatusForbidden, "Access denied",
	},
	{
		[]error{
			commands.ErrInvalidInput,
			queries.ErrInvalidCursor,
			queries.ErrInvalidRange,
			queries.ErrInvalidStatusFilter,
		},
		http.StatusBadRequest, "Invalid request",
	},
}

// Classify returns the status and client message for a use-case error.
func Classify(err error) (int, string) {
	for _, m := range mappings {
		for _, target := range m.targets {
			if errs.Is(err, target) {
				return m.status, m.message
			}
		}
	}
	return http.StatusInternalServerError, GenericFailureMessage
}

// AbortWithUseCaseError maps err to its HTTP response. Validation failures keep
// the underlying reason in the message.
func AbortWithUseCaseError(c *gin.Context, err error) {
	status, msg := Classify(err)
	if status == http.StatusBadRequest {
		msg = msg + ": " + err.Error()
	}
	AbortWithError(c, status, err, msg, nil)
}
