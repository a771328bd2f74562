package request

import (
	"time"

	"fitcoach-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// ReasonRequest is the optional body of reject and cancel.
type ReasonRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

// WindowQuery is the [from, to) range accepted by listing endpoints.
type WindowQuery struct {
	From time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To   time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
}

func (q *WindowQuery) ToWindow() queries.TimeWindow {
	return queries.TimeWindow{From: q.From, To: q.To}
}

type CoachAppointmentsQuery struct {
	WindowQuery
	Status string `form:"status" binding:"omitempty,oneof=pending confirmed cancelled_by_member cancelled_by_trainer"`
}

func (q *CoachAppointmentsQuery) ToFilter() queries.AppointmentFilter {
	f := queries.AppointmentFilter{Window: q.ToWindow()}
	if q.Status != "" {
		s := q.Status
		f.Status = &s
	}
	return f
}

type PageQuery struct {
	Limit int    `form:"limit" binding:"omitempty,min=1,max=200"`
	After string `form:"after"`
}

func (q *PageQuery) Cursor() *queries.Cursor {
	if q.After == "" {
		return nil
	}
	return &queries.Cursor{After: q.After}
}

// IdempotencyKeyHeader is optional on claim; when present it must be a UUID.
const IdempotencyKeyHeader = "Idempotency-Key"

func ParseIdempotencyKey(v string) (*uuid.UUID, error) {
	if v == "" {
		return nil, nil
	}
	key, err := uuid.Parse(v)
	if err != nil {
		return nil, err
	}
	return &key, nil
}
