package repository

import (
	"context"

	"fitcoach-booking/internal/domain/availability"
	"fitcoach-booking/internal/infra"
	"fitcoach-booking/internal/infra/repository/converter"
	sqlc "fitcoach-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type SlotWriteQueries interface {
	InsertSlots(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertSlotsParams) ([]sqlc.AvailabilitySlots, error)
	ClaimSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimSlotParams) (sqlc.AvailabilitySlots, error)
	RestoreSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.RestoreSlotParams) (int64, error)
	DeleteSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteSlotParams) (int64, error)
	GetSlotByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.AvailabilitySlots, error)
}

type SlotRepository struct {
	queries SlotWriteQueries
	db      sqlc.DBTX
}

func NewSlotRepository(queries SlotWriteQueries, db sqlc.DBTX) *SlotRepository {
	return &SlotRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SlotRepository) CreateMany(ctx context.Context, tx sqlc.DBTX, coachID uuid.UUID, slots []*availability.Slot) ([]*availability.Slot, error) {
	if len(slots) == 0 {
		return []*availability.Slot{}, nil
	}

	rows, err := r.queries.InsertSlots(ctx, tx, converter.SlotsToInsertParams(coachID, slots))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to insert slots", err)
	}

	return converter.SlotsFromInfra(rows), nil
}

func (r *SlotRepository) Claim(ctx context.Context, tx sqlc.DBTX, coachID, slotID uuid.UUID) (*availability.Slot, error) {
	row, err := r.queries.ClaimSlot(ctx, tx, sqlc.ClaimSlotParams{ID: slotID, CoachID: coachID})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim slot", err)
	}

	return converter.SlotFromInfra(row), nil
}

func (r *SlotRepository) Restore(ctx context.Context, tx sqlc.DBTX, slot *availability.Slot) (bool, error) {
	n, err := r.queries.RestoreSlot(ctx, tx, converter.SlotToRestoreParams(slot))
	if err != nil {
		return false, infra.WrapRepoErr("failed to restore slot", err)
	}

	return n > 0, nil
}

func (r *SlotRepository) Delete(ctx context.Context, tx sqlc.DBTX, coachID, slotID uuid.UUID) error {
	n, err := r.queries.DeleteSlot(ctx, tx, sqlc.DeleteSlotParams{ID: slotID, CoachID: coachID})
	if err != nil {
		return infra.WrapRepoErr("failed to delete slot", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *SlotRepository) FindByID(ctx context.Context, tx sqlc.DBTX, slotID uuid.UUID) (*availability.Slot, error) {
	row, err := r.queries.GetSlotByID(ctx, tx, slotID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get slot", err)
	}

	return converter.SlotFromInfra(row), nil
}
