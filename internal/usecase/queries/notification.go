package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type NotificationQueries interface {
	List(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*NotificationView, *Cursor, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}

type NotificationReadStore interface {
	FindFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*NotificationView, error)
	FindKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*NotificationView, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
}

type notificationQueriesImpl struct {
	store NotificationReadStore
}

func NewNotificationQueries(store NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{store: store}
}

func (q *notificationQueriesImpl) List(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*NotificationView, *Cursor, error) {
	limit = ValidateLimit(limit)
	fetch := int32(limit + 1) // #nosec G115 -- bounded by MaxListLimit

	var rows []*NotificationView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.FindFirstPage(ctx, userID, fetch)
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.store.FindKeyset(ctx, userID, lastCreatedAt, lastID, fetch)
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *notificationQueriesImpl) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return q.store.CountUnread(ctx, userID)
}
