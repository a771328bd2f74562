package notification

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyMessage = errors.New("notification message must not be empty")

// Notification is an inbox entry for one recipient.
type Notification struct {
	id        uuid.UUID
	userID    uuid.UUID
	message   string
	read      bool
	jobID     uuid.UUID
	createdAt time.Time
}

func NewNotification(userID, jobID uuid.UUID, message string, now time.Time) (*Notification, error) {
	if message == "" {
		return nil, ErrEmptyMessage
	}
	return &Notification{
		id:        uuid.New(),
		userID:    userID,
		message:   message,
		jobID:     jobID,
		createdAt: now,
	}, nil
}

func ReconstructNotification(id, userID, jobID uuid.UUID, message string, read bool, createdAt time.Time) *Notification {
	return &Notification{
		id:        id,
		userID:    userID,
		message:   message,
		read:      read,
		jobID:     jobID,
		createdAt: createdAt,
	}
}

func (n *Notification) ID() uuid.UUID        { return n.id }
func (n *Notification) UserID() uuid.UUID    { return n.userID }
func (n *Notification) Message() string      { return n.message }
func (n *Notification) Read() bool           { return n.read }
func (n *Notification) JobID() uuid.UUID     { return n.jobID }
func (n *Notification) CreatedAt() time.Time { return n.createdAt }
