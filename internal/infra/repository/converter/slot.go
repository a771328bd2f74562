package converter

import (
	"fitcoach-booking/internal/domain/availability"
	"fitcoach-booking/internal/domain/schedule"
	sqlc "fitcoach-booking/internal/infra/sqlc/generated"
	"fitcoach-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

func SlotFromInfra(row sqlc.AvailabilitySlots) *availability.Slot {
	return availability.ReconstructSlot(
		row.ID,
		row.CoachID,
		schedule.TimeRange{
			Start: pgconv.TimeFromPgtype(row.StartTime),
			End:   pgconv.TimeFromPgtype(row.EndTime),
		},
		pgconv.UUIDPtrFromPgtype(row.RestoredFrom),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

func SlotsFromInfra(rows []sqlc.AvailabilitySlots) []*availability.Slot {
	out := make([]*availability.Slot, len(rows))
	for i, row := range rows {
		out[i] = SlotFromInfra(row)
	}
	return out
}

func SlotsToInsertParams(coachID uuid.UUID, slots []*availability.Slot) sqlc.InsertSlotsParams {
	params := sqlc.InsertSlotsParams{
		CoachID:    coachID,
		Ids:        make([]uuid.UUID, len(slots)),
		StartTimes: make([]pgtype.Timestamptz, len(slots)),
		EndTimes:   make([]pgtype.Timestamptz, len(slots)),
	}
	for i, s := range slots {
		params.Ids[i] = s.ID()
		params.StartTimes[i] = pgconv.TimeToPgtype(s.StartTime())
		params.EndTimes[i] = pgconv.TimeToPgtype(s.EndTime())
	}
	return params
}

func SlotToRestoreParams(s *availability.Slot) sqlc.RestoreSlotParams {
	return sqlc.RestoreSlotParams{
		ID:           s.ID(),
		CoachID:      s.CoachID(),
		StartTime:    pgconv.TimeToPgtype(s.StartTime()),
		EndTime:      pgconv.TimeToPgtype(s.EndTime()),
		RestoredFrom: pgconv.UUIDPtrToPgtype(s.RestoredFrom()),
	}
}
