package repository

import (
	"context"
	"time"

	"fitcoach-booking/internal/infra"
	sqlc "fitcoach-booking/internal/infra/sqlc/generated"
	"fitcoach-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type IdempotencyWriteQueries interface {
	TryInsertIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.TryInsertIdempotencyKeyParams) error
	ClaimExpiredIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimExpiredIdempotencyKeyParams) (int64, error)
	UpdateIdempotencyKeyCompleted(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateIdempotencyKeyCompletedParams) error
	DeleteExpiredIdempotencyKeys(ctx context.Context, db sqlc.DBTX, expiresAt pgtype.Timestamptz) (int64, error)
}

type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
	db      sqlc.DBTX
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries, db sqlc.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{
		queries: queries,
		db:      db,
	}
}

func (r *IdempotencyRepository) TryInsert(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) error {
	params := sqlc.TryInsertIdempotencyKeyParams{
		Key:         key,
		UserID:      userID,
		Endpoint:    endpoint,
		RequestHash: requestHash,
		ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
	}

	err := r.queries.TryInsertIdempotencyKey(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to try insert idempotency key", err)
	}

	return nil
}

func (r *IdempotencyRepository) ClaimExpired(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, requestHash string, expiresAt, now time.Time) (int64, error) {
	n, err := r.queries.ClaimExpiredIdempotencyKey(ctx, tx, sqlc.ClaimExpiredIdempotencyKeyParams{
		RequestHash: requestHash,
		ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
		Key:         key,
		UserID:      userID,
		Now:         pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to claim expired idempotency key", err)
	}
	return n, nil
}

func (r *IdempotencyRepository) UpdateStatusCompleted(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, userID uuid.UUID, responseBodyHash string, resultAppointmentID uuid.UUID) error {
	params := sqlc.UpdateIdempotencyKeyCompletedParams{
		Key:                 key,
		UserID:              userID,
		ResponseBodyHash:    pgconv.StringToPgtype(responseBodyHash),
		ResultAppointmentID: pgconv.UUIDToPgtype(resultAppointmentID),
	}

	err := r.queries.UpdateIdempotencyKeyCompleted(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update idempotency key status", err)
	}

	return nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error) {
	count, err := r.queries.DeleteExpiredIdempotencyKeys(ctx, tx, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}

	return count, nil
}
