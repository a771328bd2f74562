package api

import (
	"context"
	"net/http"

	reqdto "fitcoach-booking/internal/handler/dto/request"
	resdto "fitcoach-booking/internal/handler/dto/response"
	"fitcoach-booking/internal/handler/httperr"
	"fitcoach-booking/internal/pkg/errs"
	"fitcoach-booking/internal/usecase/commands"
	"fitcoach-booking/internal/usecase/queries"
	"fitcoach-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AppointmentHandler struct {
	booking commands.BookingCommands
	cmds    commands.AppointmentCommands
	q       queries.AppointmentQueries
}

func NewAppointmentHandler(booking commands.BookingCommands, cmds commands.AppointmentCommands, q queries.AppointmentQueries) *AppointmentHandler {
	return &AppointmentHandler{booking: booking, cmds: cmds, q: q}
}

// @Summary Claim slot
// @Description Book an open slot. The slot disappears and a pending appointment is created in one step.
// @Description Send an Idempotency-Key header to make retries safe.
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param coachID path string true "Coach ID"
// @Param slotID path string true "Slot ID"
// @Param Idempotency-Key header string false "UUID"
// @Success 201 {object} resdto.ClaimSlotResponse
// @Success 200 {object} resdto.ClaimSlotResponse "Replayed"
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/coaches/{coachID}/slots/{slotID}/claim [post]
func (h *AppointmentHandler) Claim(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	coachID, ok := uuidParam(c, "coachID")
	if !ok {
		return
	}
	slotID, ok := uuidParam(c, "slotID")
	if !ok {
		return
	}
	key, err := reqdto.ParseIdempotencyKey(c.GetHeader(reqdto.IdempotencyKeyHeader))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Idempotency-Key must be a UUID", nil)
		return
	}

	result, err := h.booking.ClaimSlot(c.Request.Context(), actor, commands.ClaimSlotRequest{
		CoachID:        coachID,
		SlotID:         slotID,
		IdempotencyKey: key,
	})
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.Header("Location", "/api/appointments/"+result.AppointmentID.String())
	c.JSON(status, resdto.ClaimSlotResponse{AppointmentID: result.AppointmentID, Replayed: result.IsReplayed})
}

// @Summary Get appointment
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/appointments/{id} [get]
func (h *AppointmentHandler) Get(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary List own coach appointments
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param from query string false "RFC3339 start (default now)"
// @Param to query string false "RFC3339 end"
// @Param status query string false "pending, confirmed, cancelled_by_member or cancelled_by_trainer"
// @Success 200 {array} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Router /api/coaches/me/appointments [get]
func (h *AppointmentHandler) ListForCoach(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var q reqdto.CoachAppointmentsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	views, err := h.q.ListByCoach(c.Request.Context(), actor.ID, q.ToFilter())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentViews(views))
}

// @Summary List own member appointments
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Success 200 {array} resdto.AppointmentResponse
// @Router /api/members/me/appointments [get]
func (h *AppointmentHandler) ListForMember(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var q reqdto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	views, err := h.q.ListByMember(c.Request.Context(), actor.ID, q.Limit)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentViews(views))
}

// @Summary Approve appointment
// @Description Confirm a pending appointment and consume one session credit
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/appointments/{id}/approve [post]
func (h *AppointmentHandler) Approve(c *gin.Context) {
	h.transition(c, h.cmds.Approve)
}

// @Summary Reject appointment
// @Description Decline a pending appointment. The slot becomes bookable again.
// @Tags appointments
// @Accept json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.ReasonRequest false "Reason"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/appointments/{id}/reject [post]
func (h *AppointmentHandler) Reject(c *gin.Context) {
	var req reqdto.ReasonRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	h.transition(c, func(ctx context.Context, actor shared.Actor, id uuid.UUID) error {
		return h.cmds.Reject(ctx, actor, id, req.Reason)
	})
}

// @Summary Cancel appointment
// @Description Either party cancels. A confirmed appointment releases its credit.
// @Tags appointments
// @Accept json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.ReasonRequest false "Reason"
// @Success 204 "No Content"
// @Success 200 {object} resdto.AppointmentResponse "Confirmed appointment cancelled"
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/appointments/{id}/cancel [post]
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	var req reqdto.ReasonRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	h.transition(c, func(ctx context.Context, actor shared.Actor, id uuid.UUID) error {
		return h.cmds.Cancel(ctx, actor, id, req.Reason)
	})
}

// transition runs a command and answers with the appointment after the change,
// or 204 when the change removed it.
func (h *AppointmentHandler) transition(c *gin.Context, run func(ctx context.Context, actor shared.Actor, id uuid.UUID) error) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := run(c.Request.Context(), actor, id); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		if errs.Is(err, queries.ErrAppointmentNotFound) {
			c.Status(http.StatusNoContent)
			return
		}
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}
