package queries

import (
	"time"

	"fitcoach-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidCursor = errs.New("invalid cursor")
	ErrInvalidRange  = errs.New("invalid time range")
)

type SlotView struct {
	ID           uuid.UUID  `json:"id"`
	CoachID      uuid.UUID  `json:"coach_id"`
	StartTime    time.Time  `json:"start_time"`
	EndTime      time.Time  `json:"end_time"`
	RestoredFrom *uuid.UUID `json:"restored_from,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type AppointmentView struct {
	ID                 uuid.UUID `json:"id"`
	CoachID            uuid.UUID `json:"coach_id"`
	MemberID           uuid.UUID `json:"member_id"`
	MemberName         string    `json:"member_name"`
	MemberEmail        string    `json:"member_email"`
	StartTime          time.Time `json:"start_time"`
	EndTime            time.Time `json:"end_time"`
	Status             string    `json:"status"`
	CancellationReason *string   `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// CalendarSnapshot is the initial state of a coach calendar subscription.
type CalendarSnapshot struct {
	CoachID      uuid.UUID          `json:"coach_id"`
	From         time.Time          `json:"from"`
	To           time.Time          `json:"to"`
	Slots        []*SlotView        `json:"slots"`
	Appointments []*AppointmentView `json:"appointments"`
}

type MemberCreditView struct {
	MemberID          uuid.UUID `json:"member_id"`
	TotalSessions     int32     `json:"total_sessions"`
	UsedSessions      int32     `json:"used_sessions"`
	RemainingSessions int32     `json:"remaining_sessions"`
	ConfirmedCount    int64     `json:"confirmed_count"`
	InSync            bool      `json:"in_sync"`
}

type NotificationView struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// TimeWindow is a half-open [From, To) listing range. Zero values are filled from defaults.
type TimeWindow struct {
	From time.Time
	To   time.Time
}

func (w TimeWindow) normalize(now time.Time, span time.Duration) (TimeWindow, error) {
	if w.From.IsZero() {
		w.From = now
	}
	if w.To.IsZero() {
		w.To = w.From.Add(span)
	}
	if !w.To.After(w.From) {
		return TimeWindow{}, ErrInvalidRange
	}
	return w, nil
}
