package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	reqdto "fitcoach-booking/internal/handler/dto/request"
	resdto "fitcoach-booking/internal/handler/dto/response"
	"fitcoach-booking/internal/handler/httperr"
	"fitcoach-booking/internal/pkg/config"
	"fitcoach-booking/internal/usecase/queries"
	"fitcoach-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LiveHandler serves server-sent event streams: one snapshot, then change events.
type LiveHandler struct {
	feed      shared.EventSubscriber
	slots     queries.SlotQueries
	inbox     queries.NotificationQueries
	heartbeat time.Duration
}

func NewLiveHandler(feed shared.EventSubscriber, slots queries.SlotQueries, inbox queries.NotificationQueries, cfg config.Config) *LiveHandler {
	return &LiveHandler{
		feed:      feed,
		slots:     slots,
		inbox:     inbox,
		heartbeat: cfg.Booking.LiveHeartbeat,
	}
}

// @Summary Coach calendar stream
// @Description SSE. Sends a "snapshot" event with slots and appointments, then slot.* and appointment.* events.
// @Tags live
// @Produce text/event-stream
// @Security BearerAuth
// @Param coachID path string true "Coach ID"
// @Param from query string false "RFC3339 start (default now)"
// @Param to query string false "RFC3339 end"
// @Success 200 {object} resdto.CalendarResponse "snapshot event payload"
// @Router /api/live/coaches/{coachID}/calendar [get]
func (h *LiveHandler) Calendar(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	coachID, ok := uuidParam(c, "coachID")
	if !ok {
		return
	}
	var q reqdto.WindowQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	// subscribe before the snapshot so nothing committed in between is missed
	events, cancel, err := h.feed.Subscribe(c.Request.Context(), shared.CalendarTopic(coachID))
	if err != nil {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Live updates are unavailable", nil)
		return
	}
	defer cancel()

	snapshot, err := h.slots.Calendar(c.Request.Context(), actor, coachID, q.ToWindow())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	h.stream(c, resdto.FromCalendar(snapshot), events, calendarFilter(actor, coachID))
}

// @Summary Inbox stream
// @Description SSE. Sends a "snapshot" event with the unread count, then notification.* events.
// @Tags live
// @Produce text/event-stream
// @Security BearerAuth
// @Success 200 {object} resdto.UnreadCountResponse "snapshot event payload"
// @Router /api/live/notifications [get]
func (h *LiveHandler) Inbox(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	events, cancel, err := h.feed.Subscribe(c.Request.Context(), shared.InboxTopic(actor.ID))
	if err != nil {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Live updates are unavailable", nil)
		return
	}
	defer cancel()

	n, err := h.inbox.UnreadCount(c.Request.Context(), actor.ID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	h.stream(c, resdto.UnreadCountResponse{Unread: n}, events, nil)
}

// calendarFilter drops appointment events the actor could not see in the snapshot.
func calendarFilter(actor shared.Actor, coachID uuid.UUID) func(shared.Event) bool {
	return func(ev shared.Event) bool {
		if !strings.HasPrefix(ev.Type, "appointment.") {
			return true
		}
		var change shared.AppointmentChange
		if err := json.Unmarshal(ev.Payload, &change); err != nil {
			return false
		}
		return queries.CanSeeAppointment(actor, coachID, change.MemberID)
	}
}

// stream writes the snapshot, then every event accepted by visible (all of them when nil).
func (h *LiveHandler) stream(c *gin.Context, snapshot any, events <-chan shared.Event, visible func(shared.Event) bool) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	c.SSEvent("snapshot", snapshot)
	c.Writer.Flush()

	heartbeat := h.heartbeat
	if heartbeat <= 0 {
		heartbeat = 25 * time.Second
	}
	ticker := time.NewTicker(heartbeat)
	defer ticker.Stop()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if visible != nil && !visible(ev) {
				continue
			}
			c.SSEvent(ev.Type, ev)
			c.Writer.Flush()
		case now := <-ticker.C:
			c.SSEvent("heartbeat", gin.H{"at": now})
			c.Writer.Flush()
		}
	}
}
