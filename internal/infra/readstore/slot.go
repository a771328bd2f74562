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

type SlotViewQueries interface {
	GetSlotByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.AvailabilitySlots, error)
	ListSlotsByCoach(ctx context.Context, db sqlc.DBTX, arg sqlc.ListSlotsByCoachParams) ([]sqlc.AvailabilitySlots, error)
}

type SlotReadStore struct {
	queries SlotViewQueries
	db      sqlc.DBTX
}

func NewSlotReadStore(queries SlotViewQueries, db sqlc.DBTX) *SlotReadStore {
	return &SlotReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SlotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SlotView, error) {
	row, err := r.queries.GetSlotByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find slot by ID", err)
	}
	return toSlotView(row), nil
}

func (r *SlotReadStore) ListByCoach(ctx context.Context, coachID uuid.UUID, from, to time.Time) ([]*queries.SlotView, error) {
	rows, err := r.queries.ListSlotsByCoach(ctx, r.db, sqlc.ListSlotsByCoachParams{
		CoachID:  coachID,
		FromTime: pgconv.TimeToPgtype(from),
		ToTime:   pgconv.TimeToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots by coach", err)
	}

	result := make([]*queries.SlotView, len(rows))
	for i, row := range rows {
		result[i] = toSlotView(row)
	}
	return result, nil
}

func toSlotView(row sqlc.AvailabilitySlots) *queries.SlotView {
	return &queries.SlotView{
		ID:           row.ID,
		CoachID:      row.CoachID,
		StartTime:    pgconv.TimeFromPgtype(row.StartTime),
		EndTime:      pgconv.TimeFromPgtype(row.EndTime),
		RestoredFrom: pgconv.UUIDPtrFromPgtype(row.RestoredFrom),
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
