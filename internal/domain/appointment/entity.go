package appointment

import (
	"errors"
	"fmt"
	"time"

	"fitcoach-booking/internal/domain/availability"
	"fitcoach-booking/internal/domain/schedule"
	"fitcoach-booking/internal/domain/user"

	"github.com/google/uuid"
)

var (
	// ErrPreconditionFailed means the appointment has already moved past the
	// status the transition expects. Transitions are applied at most once.
	ErrPreconditionFailed = errors.New("appointment is not in the expected status")
	ErrNotParticipant     = errors.New("actor is not a party to this appointment")
)

type Appointment struct {
	id                 uuid.UUID
	coachID            uuid.UUID
	member             MemberSnapshot
	timeRange          schedule.TimeRange
	status             Status
	cancellationReason Reason
	createdAt          time.Time
	updatedAt          time.Time
}

// Outcome lists the compensating writes a transition requires. The use case
// applies them in the same transaction as the status change.
type Outcome struct {
	From        Status
	To          Status
	Delete      bool
	RestoreSlot bool
	CreditDelta int
}

// NewFromClaim turns a claimed slot into a pending appointment.
func NewFromClaim(slot *availability.Slot, member MemberSnapshot, now time.Time) (*Appointment, error) {
	if err := member.validate(); err != nil {
		return nil, err
	}
	return &Appointment{
		id:        uuid.New(),
		coachID:   slot.CoachID(),
		member:    member,
		timeRange: slot.TimeRange(),
		status:    StatusPending,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructAppointment(
	id, coachID uuid.UUID,
	member MemberSnapshot,
	timeRange schedule.TimeRange,
	status Status,
	cancellationReason Reason,
	createdAt, updatedAt time.Time,
) *Appointment {
	return &Appointment{
		id:                 id,
		coachID:            coachID,
		member:             member,
		timeRange:          timeRange,
		status:             status,
		cancellationReason: cancellationReason,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

func (a *Appointment) ID() uuid.UUID                 { return a.id }
func (a *Appointment) CoachID() uuid.UUID            { return a.coachID }
func (a *Appointment) Member() MemberSnapshot        { return a.member }
func (a *Appointment) MemberID() uuid.UUID           { return a.member.ID }
func (a *Appointment) TimeRange() schedule.TimeRange { return a.timeRange }
func (a *Appointment) Status() Status                { return a.status }
func (a *Appointment) CancellationReason() Reason    { return a.cancellationReason }
func (a *Appointment) CreatedAt() time.Time          { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time          { return a.updatedAt }

// PartyOf resolves which side the actor acts for. Admins act as the trainer.
func (a *Appointment) PartyOf(actorID uuid.UUID, role user.Role) (Party, error) {
	switch {
	case role == user.RoleAdmin:
		return PartyTrainer, nil
	case role == user.RoleCoach && actorID == a.coachID:
		return PartyTrainer, nil
	case role == user.RoleMember && actorID == a.member.ID:
		return PartyMember, nil
	default:
		return "", ErrNotParticipant
	}
}

// Approve moves pending to confirmed and consumes one session credit.
func (a *Appointment) Approve(now time.Time) (Outcome, error) {
	if a.status != StatusPending {
		return Outcome{}, a.preconditionErr("approve")
	}
	out := Outcome{From: a.status, To: StatusConfirmed, CreditDelta: 1}
	a.status = StatusConfirmed
	a.updatedAt = now
	return out, nil
}

// Reject removes a pending appointment and gives its time back to the coach.
func (a *Appointment) Reject(reason Reason, now time.Time) (Outcome, error) {
	if a.status != StatusPending {
		return Outcome{}, a.preconditionErr("reject")
	}
	out := Outcome{From: a.status, To: a.status, Delete: true, RestoreSlot: true}
	a.cancellationReason = reason
	a.updatedAt = now
	return out, nil
}

// Cancel deletes a pending appointment, or marks a confirmed one cancelled by
// the given party and releases the credit it consumed.
func (a *Appointment) Cancel(by Party, reason Reason, now time.Time) (Outcome, error) {
	switch a.status {
	case StatusPending:
		out := Outcome{From: a.status, To: a.status, Delete: true, RestoreSlot: true}
		a.cancellationReason = reason
		a.updatedAt = now
		return out, nil
	case StatusConfirmed:
		to := by.cancelledStatus()
		out := Outcome{From: a.status, To: to, RestoreSlot: true, CreditDelta: -1}
		a.status = to
		a.cancellationReason = reason
		a.updatedAt = now
		return out, nil
	default:
		return Outcome{}, a.preconditionErr("cancel")
	}
}

// RestoredSlot builds the slot that compensates for this appointment.
func (a *Appointment) RestoredSlot() (*availability.Slot, error) {
	return availability.Restore(a.coachID, a.id, a.timeRange)
}

func (a *Appointment) preconditionErr(action string) error {
	return fmt.Errorf("%w: cannot %s appointment in status %s", ErrPreconditionFailed, action, a.status)
}
