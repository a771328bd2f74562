package readstore

import (
	"context"

	"fitcoach-booking/internal/infra"
	sqlc "fitcoach-booking/internal/infra/sqlc/generated"
	"fitcoach-booking/internal/pkg/pgconv"
	"fitcoach-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyReadQueries interface {
	GetIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetIdempotencyKeyParams) (sqlc.IdempotencyKeys, error)
}

type IdempotencyReadStore struct {
	queries IdempotencyReadQueries
}

func NewIdempotencyReadStore(queries IdempotencyReadQueries) *IdempotencyReadStore {
	return &IdempotencyReadStore{
		queries: queries,
	}
}

// Get returns the record even when it has expired; callers compare ExpiresAt with their clock.
func (r *IdempotencyReadStore) Get(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	row, err := r.queries.GetIdempotencyKey(ctx, tx, sqlc.GetIdempotencyKeyParams{
		Key:    key,
		UserID: userID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	return &shared.IdempotencyRecord{
		Key:                 row.Key,
		UserID:              row.UserID,
		Endpoint:            row.Endpoint,
		Status:              row.Status,
		RequestHash:         row.RequestHash,
		ResultAppointmentID: pgconv.UUIDPtrFromPgtype(row.ResultAppointmentID),
		ExpiresAt:           pgconv.TimeFromPgtype(row.ExpiresAt),
	}, nil
}
