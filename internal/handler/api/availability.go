package api

import (
	"net/http"

	reqdto "fitcoach-booking/internal/handler/dto/request"
	resdto "fitcoach-booking/internal/handler/dto/response"
	"fitcoach-booking/internal/handler/httperr"
	"fitcoach-booking/internal/usecase/commands"
	"fitcoach-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	cmds commands.AvailabilityCommands
	q    queries.SlotQueries
}

func NewAvailabilityHandler(cmds commands.AvailabilityCommands, q queries.SlotQueries) *AvailabilityHandler {
	return &AvailabilityHandler{cmds: cmds, q: q}
}

// @Summary Preview slots
// @Description Cut a day window into slots without saving anything
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SlotPlanRequest true "Slot plan"
// @Success 200 {object} resdto.PreviewSlotsResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/coaches/me/slots/preview [post]
func (h *AvailabilityHandler) Preview(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.SlotPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.PreviewSlots(c.Request.Context(), actor, req.ToCommand())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPreview(result))
}

// @Summary Publish slots
// @Description Save the slots of a plan. Ranges that already exist are skipped.
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SlotPlanRequest true "Slot plan"
// @Success 201 {object} resdto.PublishSlotsResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/coaches/me/slots [post]
func (h *AvailabilityHandler) Publish(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.SlotPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.PublishSlots(c.Request.Context(), actor, req.ToCommand())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPublish(result))
}

// @Summary Delete slot
// @Tags slots
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/coaches/me/slots/{id} [delete]
func (h *AvailabilityHandler) Delete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	slotID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.cmds.DeleteSlot(c.Request.Context(), actor, slotID); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List open slots
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param coachID path string true "Coach ID"
// @Param from query string false "RFC3339 start (default now)"
// @Param to query string false "RFC3339 end"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} httperr.Response
// @Router /api/coaches/{coachID}/slots [get]
func (h *AvailabilityHandler) List(c *gin.Context) {
	coachID, ok := uuidParam(c, "coachID")
	if !ok {
		return
	}
	var q reqdto.WindowQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	slots, err := h.q.ListSlots(c.Request.Context(), coachID, q.ToWindow())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotViews(slots))
}
