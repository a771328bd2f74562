package repository

import (
	"context"
	"time"

	"fitcoach-booking/internal/domain/notification"
	"fitcoach-booking/internal/infra"
	sqlc "fitcoach-booking/internal/infra/sqlc/generated"
	"fitcoach-booking/internal/pkg/pgconv"
	"fitcoach-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
	ClaimDueNotificationJob(ctx context.Context, db sqlc.DBTX, runAt pgtype.Timestamptz) (sqlc.NotificationJobs, error)
	UpdateNotificationJobStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateNotificationJobStatusParams) error
}

// NotificationRepository writes and drains the notification outbox.
type NotificationRepository struct {
	queries NotificationWriteQueries
	db      sqlc.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db sqlc.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, recipientID uuid.UUID, payload []byte, runAt time.Time) error {
	params := sqlc.CreateNotificationJobParams{
		Kind:        kind,
		Topic:       topic,
		RecipientID: recipientID,
		Payload:     payload,
		RunAt:       pgtype.Timestamptz{Time: runAt, Valid: true},
		Status:      string(notification.JobQueued),
	}

	err := r.queries.CreateNotificationJob(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}

	return nil
}

func (r *NotificationRepository) ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time) (*shared.NotificationJob, error) {
	row, err := r.queries.ClaimDueNotificationJob(ctx, tx, pgconv.TimeToPgtype(now))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification job", err)
	}

	return &shared.NotificationJob{
		ID:          row.ID,
		Kind:        row.Kind,
		Topic:       row.Topic,
		RecipientID: row.RecipientID,
		Payload:     row.Payload,
		Attempts:    int(row.Attempts),
		RunAt:       pgconv.TimeFromPgtype(row.RunAt),
	}, nil
}

func (r *NotificationRepository) UpdateJobStatus(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, status notification.JobStatus, attempts int, lastError *string, runAt time.Time) error {
	params := sqlc.UpdateNotificationJobStatusParams{
		ID:        jobID,
		Status:    string(status),
		Attempts:  int32(attempts), // #nosec G115 -- capped by WORKER_MAX_ATTEMPTS
		LastError: pgconv.StringPtrToPgtype(lastError),
		RunAt:     pgconv.TimeToPgtype(runAt),
	}

	err := r.queries.UpdateNotificationJobStatus(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update notification job status", err)
	}

	return nil
}
