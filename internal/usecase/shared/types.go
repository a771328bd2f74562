package shared

import (
	"time"

	"fitcoach-booking/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the authenticated caller of a command.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

type UserSnapshot struct {
	ID       uuid.UUID
	Email    string
	Name     string
	Role     user.Role
	IsActive bool
}

type MemberSnapshot struct {
	ID            uuid.UUID
	Email         string
	Name          string
	IsActive      bool
	TotalSessions int
	UsedSessions  int
}

type IdempotencyRecord struct {
	Key                 uuid.UUID
	UserID              uuid.UUID
	Endpoint            string
	Status              string
	RequestHash         string
	ResultAppointmentID *uuid.UUID
	ExpiresAt           time.Time
}

const (
	IdempotencyProcessing = "processing"
	IdempotencyCompleted  = "completed"
)

type NotificationJob struct {
	ID          uuid.UUID
	Kind        string
	Topic       string
	RecipientID uuid.UUID
	Payload     []byte
	Attempts    int
	RunAt       time.Time
}
