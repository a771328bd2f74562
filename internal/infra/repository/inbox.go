package repository

import (
	"context"

	"fitcoach-booking/internal/domain/notification"
	"fitcoach-booking/internal/infra"
	sqlc "fitcoach-booking/internal/infra/sqlc/generated"
	"fitcoach-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type InboxWriteQueries interface {
	InsertNotification(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertNotificationParams) (int64, error)
	MarkNotificationRead(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationReadParams) (int64, error)
	MarkAllNotificationsRead(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int64, error)
}

type InboxRepository struct {
	queries InboxWriteQueries
	db      sqlc.DBTX
}

func NewInboxRepository(queries InboxWriteQueries, db sqlc.DBTX) *InboxRepository {
	return &InboxRepository{
		queries: queries,
		db:      db,
	}
}

func (r *InboxRepository) Deliver(ctx context.Context, tx sqlc.DBTX, n *notification.Notification) (bool, error) {
	inserted, err := r.queries.InsertNotification(ctx, tx, sqlc.InsertNotificationParams{
		ID:        n.ID(),
		UserID:    n.UserID(),
		Message:   n.Message(),
		JobID:     n.JobID(),
		CreatedAt: pgconv.TimeToPgtype(n.CreatedAt()),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert notification", err)
	}
	return inserted > 0, nil
}

// MarkRead only touches rows owned by userID, so a foreign id reads as NOT_FOUND.
func (r *InboxRepository) MarkRead(ctx context.Context, tx sqlc.DBTX, userID, notificationID uuid.UUID) error {
	n, err := r.queries.MarkNotificationRead(ctx, tx, sqlc.MarkNotificationReadParams{ID: notificationID, UserID: userID})
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification read", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("notification not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *InboxRepository) MarkAllRead(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (int64, error) {
	n, err := r.queries.MarkAllNotificationsRead(ctx, tx, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark all notifications read", err)
	}
	return n, nil
}
