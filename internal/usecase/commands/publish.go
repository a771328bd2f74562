package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"fitcoach-booking/internal/domain/appointment"
	"fitcoach-booking/internal/domain/availability"
	"fitcoach-booking/internal/domain/notification"
	"fitcoach-booking/internal/usecase/shared"
)

// liveEvents collects events during a transaction and publishes them once it has committed.
type liveEvents struct {
	feed   shared.EventPublisher
	at     time.Time
	queued []queuedEvent
}

type queuedEvent struct {
	topic     string
	eventType string
	payload   any
}

func newLiveEvents(feed shared.EventPublisher, at time.Time) *liveEvents {
	return &liveEvents{feed: feed, at: at}
}

func (e *liveEvents) add(topic, eventType string, payload any) {
	e.queued = append(e.queued, queuedEvent{topic: topic, eventType: eventType, payload: payload})
}

func (e *liveEvents) slot(eventType string, s *availability.Slot) {
	e.add(shared.CalendarTopic(s.CoachID()), eventType, slotChange(s))
}

func (e *liveEvents) appointment(eventType string, a *appointment.Appointment) {
	e.add(shared.CalendarTopic(a.CoachID()), eventType, shared.AppointmentChange{
		ID:        a.ID(),
		CoachID:   a.CoachID(),
		MemberID:  a.MemberID(),
		Status:    a.Status().String(),
		StartTime: a.TimeRange().Start,
		EndTime:   a.TimeRange().End,
	})
}

// flush is best-effort: a lost event only delays the subscriber until its next snapshot.
func (e *liveEvents) flush(ctx context.Context) {
	if e.feed == nil {
		return
	}
	ctx = context.WithoutCancel(ctx)
	for _, q := range e.queued {
		ev, err := shared.NewEvent(q.eventType, q.payload, e.at)
		if err != nil {
			slog.Warn("failed to encode live event", "type", q.eventType, "error", err.Error())
			continue
		}
		if err := e.feed.Publish(ctx, q.topic, ev); err != nil {
			slog.Warn("failed to publish live event", "topic", q.topic, "type", q.eventType, "error", err.Error())
		}
	}
	e.queued = nil
}

func slotChange(s *availability.Slot) shared.SlotChange {
	return shared.SlotChange{
		ID:           s.ID(),
		CoachID:      s.CoachID(),
		StartTime:    s.StartTime(),
		EndTime:      s.EndTime(),
		RestoredFrom: s.RestoredFrom(),
	}
}

// enqueueNotification writes an outbox job in the caller's transaction.
func enqueueNotification(ctx context.Context, tx shared.Tx, p notification.Payload, runAt time.Time) error {
	b, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), notification.ChannelInApp, p.Kind.String(), p.RecipientID, b, runAt)
}
