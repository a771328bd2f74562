package queries

import (
	"context"
	"time"

	"fitcoach-booking/internal/domain/appointment"
	"fitcoach-booking/internal/domain/user"
	"fitcoach-booking/internal/infra"
	"fitcoach-booking/internal/pkg/clock"
	"fitcoach-booking/internal/pkg/errs"
	"fitcoach-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrAppointmentNotFound = errs.New("appointment not found")
	ErrAppointmentAccess   = errs.New("appointment access denied")
	ErrInvalidStatusFilter = errs.New("invalid status filter")
)

type AppointmentFilter struct {
	Window TimeWindow
	Status *string
}

type AppointmentQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*AppointmentView, error)
	ListByCoach(ctx context.Context, coachID uuid.UUID, filter AppointmentFilter) ([]*AppointmentView, error)
	ListByMember(ctx context.Context, memberID uuid.UUID, limit int) ([]*AppointmentView, error)
}

type AppointmentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	ListByCoach(ctx context.Context, coachID uuid.UUID, from, to time.Time, status *string) ([]*AppointmentView, error)
	ListByMember(ctx context.Context, memberID uuid.UUID, limit int32) ([]*AppointmentView, error)
}

type appointmentQueriesImpl struct {
	store AppointmentReadStore
	clock clock.Clock
	span  time.Duration
}

func NewAppointmentQueries(store AppointmentReadStore, clk clock.Clock, span time.Duration) AppointmentQueries {
	return &appointmentQueriesImpl{
		store: store,
		clock: clk,
		span:  span,
	}
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*AppointmentView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}

	if !CanSeeAppointment(actor, view.CoachID, view.MemberID) {
		return nil, ErrAppointmentAccess
	}

	return view, nil
}

func (q *appointmentQueriesImpl) ListByCoach(ctx context.Context, coachID uuid.UUID, filter AppointmentFilter) ([]*AppointmentView, error) {
	if filter.Status != nil && !appointment.Status(*filter.Status).IsValid() {
		return nil, ErrInvalidStatusFilter
	}

	w, err := filter.Window.normalize(q.clock.Now(), q.span)
	if err != nil {
		return nil, err
	}

	return q.store.ListByCoach(ctx, coachID, w.From, w.To, filter.Status)
}

func (q *appointmentQueriesImpl) ListByMember(ctx context.Context, memberID uuid.UUID, limit int) ([]*AppointmentView, error) {
	limit = ValidateLimit(limit)
	return q.store.ListByMember(ctx, memberID, int32(limit)) // #nosec G115 -- bounded by MaxListLimit
}

// CanSeeAppointment reports whether actor may see an appointment between coachID and memberID.
// Members only see their own; the coach and admins see the whole book.
func CanSeeAppointment(actor shared.Actor, coachID, memberID uuid.UUID) bool {
	return memberID == actor.ID || canSeeCoachBook(actor, coachID)
}

func canSeeCoachBook(actor shared.Actor, coachID uuid.UUID) bool {
	return actor.Role == user.RoleAdmin || (actor.Role == user.RoleCoach && actor.ID == coachID)
}
