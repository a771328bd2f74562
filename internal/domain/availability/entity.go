package availability

import (
	"errors"
	"time"

	"fitcoach-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

var ErrMissingCoach = errors.New("slot requires a coach")

// Slot is an open, unclaimed bookable interval owned by a coach.
type Slot struct {
	id           uuid.UUID
	coachID      uuid.UUID
	timeRange    schedule.TimeRange
	restoredFrom *uuid.UUID
	createdAt    time.Time
}

func NewSlot(coachID uuid.UUID, tr schedule.TimeRange) (*Slot, error) {
	if coachID == uuid.Nil {
		return nil, ErrMissingCoach
	}
	if _, err := schedule.NewTimeRange(tr.Start, tr.End); err != nil {
		return nil, err
	}
	return &Slot{
		id:        uuid.New(),
		coachID:   coachID,
		timeRange: tr,
	}, nil
}

// Restore recreates the slot an appointment occupied. The appointment id is kept
// as a correlation id so a repeated compensation can be detected.
func Restore(coachID, appointmentID uuid.UUID, tr schedule.TimeRange) (*Slot, error) {
	s, err := NewSlot(coachID, tr)
	if err != nil {
		return nil, err
	}
	s.restoredFrom = &appointmentID
	return s, nil
}

func ReconstructSlot(id, coachID uuid.UUID, tr schedule.TimeRange, restoredFrom *uuid.UUID, createdAt time.Time) *Slot {
	return &Slot{
		id:           id,
		coachID:      coachID,
		timeRange:    tr,
		restoredFrom: restoredFrom,
		createdAt:    createdAt,
	}
}

func (s *Slot) ID() uuid.UUID                 { return s.id }
func (s *Slot) CoachID() uuid.UUID            { return s.coachID }
func (s *Slot) TimeRange() schedule.TimeRange { return s.timeRange }
func (s *Slot) StartTime() time.Time          { return s.timeRange.Start }
func (s *Slot) EndTime() time.Time            { return s.timeRange.End }
func (s *Slot) RestoredFrom() *uuid.UUID      { return s.restoredFrom }
func (s *Slot) CreatedAt() time.Time          { return s.createdAt }

// SlotsFromPlan materialises every range of the plan for the coach.
func SlotsFromPlan(coachID uuid.UUID, plan *schedule.Plan) ([]*Slot, error) {
	slots := make([]*Slot, 0, plan.Count())
	for tr := range plan.Slots() {
		s, err := NewSlot(coachID, tr)
		if err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	return slots, nil
}
