package notification

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrUnknownKind = errors.New("unknown notification kind")

const timeLayout = "2006-01-02 15:04"

// Payload is what a transition stores in the outbox for later delivery.
type Payload struct {
	Kind          Kind      `json:"kind"`
	RecipientID   uuid.UUID `json:"recipientId"`
	AppointmentID uuid.UUID `json:"appointmentId"`
	ActorName     string    `json:"actorName"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	Reason        string    `json:"reason,omitempty"`
}

// Message renders the inbox text for the payload in the given zone.
func (p Payload) Message(loc *time.Location) (string, error) {
	if loc == nil {
		loc = time.UTC
	}
	when := p.StartTime.In(loc).Format(timeLayout) + "-" + p.EndTime.In(loc).Format("15:04")

	var msg string
	switch p.Kind {
	case KindAppointmentRequested:
		msg = fmt.Sprintf("%s requested a session on %s", p.ActorName, when)
	case KindAppointmentConfirmed:
		msg = fmt.Sprintf("%s confirmed your session on %s", p.ActorName, when)
	case KindAppointmentRejected:
		msg = fmt.Sprintf("%s declined your session request on %s", p.ActorName, when)
	case KindAppointmentCancelled:
		msg = fmt.Sprintf("%s cancelled the session on %s", p.ActorName, when)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, p.Kind)
	}

	if p.Reason != "" {
		msg += " (reason: " + p.Reason + ")"
	}
	return msg, nil
}
