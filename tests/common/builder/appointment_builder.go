//go:build unit || e2e

package builder

import (
	"time"

	"fitcoach-booking/internal/domain/appointment"
	"fitcoach-booking/internal/domain/schedule"
	"fitcoach-booking/internal/domain/user"
	"fitcoach-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	ID          uuid.UUID
	CoachID     uuid.UUID
	MemberID    uuid.UUID
	MemberName  string
	MemberEmail string
	Start       time.Time
	Duration    time.Duration
	Status      appointment.Status
	Reason      string
	CreatedAt   time.Time
}

func NewAppointmentBuilder() *AppointmentBuilder {
	return &AppointmentBuilder{
		ID:          uuid.New(),
		CoachID:     uuid.New(),
		MemberID:    uuid.New(),
		MemberName:  "김민지",
		MemberEmail: "member@example.com",
		Start:       time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC),
		Duration:    time.Hour,
		Status:      appointment.StatusPending,
		CreatedAt:   time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
	}
}

func (a *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(a)
	return a
}

// BuildDomain panics on invalid builder input so table tests stay flat.
func (a *AppointmentBuilder) BuildDomain() *appointment.Appointment {
	email := user.ReconstructEmail(a.MemberEmail)
	var reason appointment.Reason
	if a.Reason != "" {
		r, err := appointment.NewReason(a.Reason)
		if err != nil {
			panic(err)
		}
		reason = r
	}

	return appointment.ReconstructAppointment(
		a.ID,
		a.CoachID,
		appointment.MemberSnapshot{ID: a.MemberID, Name: a.MemberName, Email: email},
		a.timeRange(),
		a.Status,
		reason,
		a.CreatedAt,
		a.CreatedAt,
	)
}

func (a *AppointmentBuilder) BuildView() *queries.AppointmentView {
	v := &queries.AppointmentView{
		ID:          a.ID,
		CoachID:     a.CoachID,
		MemberID:    a.MemberID,
		MemberName:  a.MemberName,
		MemberEmail: a.MemberEmail,
		StartTime:   a.Start,
		EndTime:     a.Start.Add(a.Duration),
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.CreatedAt,
	}
	if a.Reason != "" {
		reason := a.Reason
		v.CancellationReason = &reason
	}
	return v
}

func (a *AppointmentBuilder) timeRange() schedule.TimeRange {
	return schedule.TimeRange{Start: a.Start, End: a.Start.Add(a.Duration)}
}

// Fluent builder methods
func (a *AppointmentBuilder) WithStatus(status appointment.Status) *AppointmentBuilder {
	a.Status = status
	return a
}

func (a *AppointmentBuilder) WithCoach(id uuid.UUID) *AppointmentBuilder {
	a.CoachID = id
	return a
}

func (a *AppointmentBuilder) WithMember(id uuid.UUID) *AppointmentBuilder {
	a.MemberID = id
	return a
}

func (a *AppointmentBuilder) WithStart(start time.Time) *AppointmentBuilder {
	a.Start = start
	return a
}

func (a *AppointmentBuilder) WithReason(reason string) *AppointmentBuilder {
	a.Reason = reason
	return a
}
