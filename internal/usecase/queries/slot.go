package queries

import (
	"context"
	"time"

	"fitcoach-booking/internal/pkg/clock"
	"fitcoach-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type SlotQueries interface {
	ListSlots(ctx context.Context, coachID uuid.UUID, window TimeWindow) ([]*SlotView, error)
	// Calendar returns open slots and appointments of the coach. Only the coach and admins see other members' appointments.
	Calendar(ctx context.Context, actor shared.Actor, coachID uuid.UUID, window TimeWindow) (*CalendarSnapshot, error)
}

type SlotReadStore interface {
	ListByCoach(ctx context.Context, coachID uuid.UUID, from, to time.Time) ([]*SlotView, error)
}

type slotQueriesImpl struct {
	slots        SlotReadStore
	appointments AppointmentReadStore
	clock        clock.Clock
	span         time.Duration
}

func NewSlotQueries(slots SlotReadStore, appointments AppointmentReadStore, clk clock.Clock, span time.Duration) SlotQueries {
	return &slotQueriesImpl{
		slots:        slots,
		appointments: appointments,
		clock:        clk,
		span:         span,
	}
}

func (q *slotQueriesImpl) ListSlots(ctx context.Context, coachID uuid.UUID, window TimeWindow) ([]*SlotView, error) {
	w, err := window.normalize(q.clock.Now(), q.span)
	if err != nil {
		return nil, err
	}
	return q.slots.ListByCoach(ctx, coachID, w.From, w.To)
}

func (q *slotQueriesImpl) Calendar(ctx context.Context, actor shared.Actor, coachID uuid.UUID, window TimeWindow) (*CalendarSnapshot, error) {
	w, err := window.normalize(q.clock.Now(), q.span)
	if err != nil {
		return nil, err
	}

	slots, err := q.slots.ListByCoach(ctx, coachID, w.From, w.To)
	if err != nil {
		return nil, err
	}

	appointments, err := q.appointments.ListByCoach(ctx, coachID, w.From, w.To, nil)
	if err != nil {
		return nil, err
	}

	if !canSeeCoachBook(actor, coachID) {
		own := make([]*AppointmentView, 0, len(appointments))
		for _, a := range appointments {
			if CanSeeAppointment(actor, coachID, a.MemberID) {
				own = append(own, a)
			}
		}
		appointments = own
	}

	return &CalendarSnapshot{
		CoachID:      coachID,
		From:         w.From,
		To:           w.To,
		Slots:        slots,
		Appointments: appointments,
	}, nil
}
