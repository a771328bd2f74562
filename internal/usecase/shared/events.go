package shared

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Live event types. Calendar topics carry slot.* and appointment.*; inbox topics carry notification.*.
const (
	EventSlotsPublished       = "slot.published"
	EventSlotDeleted          = "slot.deleted"
	EventSlotRestored         = "slot.restored"
	EventAppointmentCreated   = "appointment.created"
	EventAppointmentUpdated   = "appointment.updated"
	EventAppointmentDeleted   = "appointment.deleted"
	EventNotificationCreated  = "notification.created"
	EventNotificationsUpdated = "notification.read"
)

type Event struct {
	Type       string          `json:"type"`
	Payload    json.RawMessage `json:"payload"`
	OccurredAt time.Time       `json:"occurredAt"`
}

func NewEvent(eventType string, payload any, at time.Time) (Event, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return Event{}, err
	}
	return Event{Type: eventType, Payload: b, OccurredAt: at}, nil
}

// EventPublisher fans events out to live subscribers. Delivery is best-effort
// and happens after the transaction that caused the event has committed.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, event Event) error
}

// EventSubscriber delivers events published on a topic until ctx is done or
// the returned cancel function is called.
type EventSubscriber interface {
	Subscribe(ctx context.Context, topic string) (<-chan Event, func(), error)
}

type LiveFeed interface {
	EventPublisher
	EventSubscriber
}

func CalendarTopic(coachID uuid.UUID) string {
	return "calendar:" + coachID.String()
}

func InboxTopic(userID uuid.UUID) string {
	return "inbox:" + userID.String()
}

// SlotChange is the payload of slot.* events.
type SlotChange struct {
	ID           uuid.UUID  `json:"id"`
	CoachID      uuid.UUID  `json:"coachId"`
	StartTime    time.Time  `json:"startTime"`
	EndTime      time.Time  `json:"endTime"`
	RestoredFrom *uuid.UUID `json:"restoredFrom,omitempty"`
}

// AppointmentChange is the payload of appointment.* events.
type AppointmentChange struct {
	ID        uuid.UUID `json:"id"`
	CoachID   uuid.UUID `json:"coachId"`
	MemberID  uuid.UUID `json:"memberId"`
	Status    string    `json:"status"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// InboxChange is the payload of notification.* events.
type InboxChange struct {
	NotificationID *uuid.UUID `json:"notificationId,omitempty"`
	Message        string     `json:"message,omitempty"`
	AllRead        bool       `json:"allRead,omitempty"`
}
