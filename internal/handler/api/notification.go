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

type NotificationHandler struct {
	cmds commands.NotificationCommands
	q    queries.NotificationQueries
}

func NewNotificationHandler(cmds commands.NotificationCommands, q queries.NotificationQueries) *NotificationHandler {
	return &NotificationHandler{cmds: cmds, q: q}
}

// @Summary List notifications
// @Description Newest first with keyset pagination
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.NotificationListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var q reqdto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	items, next, err := h.q.List(c.Request.Context(), actor.ID, q.Cursor(), q.Limit)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromNotificationPage(items, next))
}

// @Summary Unread notification count
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.UnreadCountResponse
// @Router /api/notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	n, err := h.q.UnreadCount(c.Request.Context(), actor.ID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.UnreadCountResponse{Unread: n})
}

// @Summary Mark notification read
// @Tags notifications
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.cmds.MarkRead(c.Request.Context(), actor, id); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Mark all notifications read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int64
// @Router /api/notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	n, err := h.cmds.MarkAllRead(c.Request.Context(), actor)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": n})
}
