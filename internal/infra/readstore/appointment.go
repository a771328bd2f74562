package readstore

import (
	"context"
	"time"

	"fitcoach-booking/internal/infra"
	sqlc "fitcoach-booking/internal/infra/sqlc/generated"
	"fitcoach-booking/internal/pkg/pgconv"
	"fitcoach-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentViewQueries interface {
	GetAppointmentByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Appointments, error)
	ListAppointmentsByCoach(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAppointmentsByCoachParams) ([]sqlc.Appointments, error)
	ListAppointmentsByMember(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAppointmentsByMemberParams) ([]sqlc.Appointments, error)
}

type AppointmentReadStore struct {
	queries AppointmentViewQueries
	db      sqlc.DBTX
}

func NewAppointmentReadStore(queries AppointmentViewQueries, db sqlc.DBTX) *AppointmentReadStore {
	return &AppointmentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AppointmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	row, err := r.queries.GetAppointmentByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment by ID", err)
	}
	return toAppointmentView(row), nil
}

func (r *AppointmentReadStore) ListByCoach(ctx context.Context, coachID uuid.UUID, from, to time.Time, status *string) ([]*queries.AppointmentView, error) {
	rows, err := r.queries.ListAppointmentsByCoach(ctx, r.db, sqlc.ListAppointmentsByCoachParams{
		CoachID:  coachID,
		FromTime: pgconv.TimeToPgtype(from),
		ToTime:   pgconv.TimeToPgtype(to),
		Status:   pgconv.StringPtrToPgtype(status),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments by coach", err)
	}
	return toAppointmentViews(rows), nil
}

func (r *AppointmentReadStore) ListByMember(ctx context.Context, memberID uuid.UUID, limit int32) ([]*queries.AppointmentView, error) {
	rows, err := r.queries.ListAppointmentsByMember(ctx, r.db, sqlc.ListAppointmentsByMemberParams{
		MemberID: memberID,
		Limit:    limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments by member", err)
	}
	return toAppointmentViews(rows), nil
}

func toAppointmentViews(rows []sqlc.Appointments) []*queries.AppointmentView {
	result := make([]*queries.AppointmentView, len(rows))
	for i, row := range rows {
		result[i] = toAppointmentView(row)
	}
	return result
}

func toAppointmentView(row sqlc.Appointments) *queries.AppointmentView {
	return &queries.AppointmentView{
		ID:                 row.ID,
		CoachID:            row.CoachID,
		MemberID:           row.MemberID,
		MemberName:         row.MemberName,
		MemberEmail:        row.MemberEmail,
		StartTime:          pgconv.TimeFromPgtype(row.StartTime),
		EndTime:            pgconv.TimeFromPgtype(row.EndTime),
		Status:             row.Status,
		CancellationReason: pgconv.StringPtrFromPgtype(row.CancellationReason),
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
