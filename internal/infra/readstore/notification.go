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

type NotificationViewQueries interface {
	ListNotificationsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListNotificationsFirstPageParams) ([]sqlc.Notifications, error)
	ListNotificationsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListNotificationsKeysetParams) ([]sqlc.Notifications, error)
	CountUnreadNotifications(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int64, error)
}

type NotificationReadStore struct {
	queries NotificationViewQueries
	db      sqlc.DBTX
}

func NewNotificationReadStore(queries NotificationViewQueries, db sqlc.DBTX) *NotificationReadStore {
	return &NotificationReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *NotificationReadStore) FindFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.NotificationView, error) {
	rows, err := s.queries.ListNotificationsFirstPage(ctx, s.db, sqlc.ListNotificationsFirstPageParams{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications first page", err)
	}
	return toNotificationViews(rows), nil
}

func (s *NotificationReadStore) FindKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.NotificationView, error) {
	rows, err := s.queries.ListNotificationsKeyset(ctx, s.db, sqlc.ListNotificationsKeysetParams{
		UserID:         userID,
		AfterCreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		AfterID:        lastID,
		Lim:            limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications keyset", err)
	}
	return toNotificationViews(rows), nil
}

func (s *NotificationReadStore) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := s.queries.CountUnreadNotifications(ctx, s.db, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count unread notifications", err)
	}
	return n, nil
}

func toNotificationViews(rows []sqlc.Notifications) []*queries.NotificationView {
	result := make([]*queries.NotificationView, len(rows))
	for i, row := range rows {
		result[i] = &queries.NotificationView{
			ID:        row.ID,
			UserID:    row.UserID,
			Message:   row.Message,
			Read:      row.Read,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result
}
