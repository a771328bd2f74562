package commands

import (
	"context"

	"fitcoach-booking/internal/infra"
	"fitcoach-booking/internal/pkg/clock"
	"fitcoach-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationCommands interface {
	MarkRead(ctx context.Context, actor shared.Actor, notificationID uuid.UUID) error
	MarkAllRead(ctx context.Context, actor shared.Actor) (int64, error)
}

type notificationUseCaseImpl struct {
	uow   shared.UnitOfWork
	feed  shared.EventPublisher
	clock clock.Clock
}

func NewNotificationUseCase(uow shared.UnitOfWork, feed shared.EventPublisher, clk clock.Clock) NotificationCommands {
	return &notificationUseCaseImpl{
		uow:   uow,
		feed:  feed,
		clock: clk,
	}
}

// MarkRead only touches notifications addressed to the actor; anything else reads as not found.
func (uc *notificationUseCaseImpl) MarkRead(ctx context.Context, actor shared.Actor, notificationID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Inbox().MarkRead(ctx, tx.DB(), actor.ID, notificationID)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrNotificationNotFound
		}
		return markUnexpected(err)
	}

	events := newLiveEvents(uc.feed, uc.clock.Now())
	events.add(shared.InboxTopic(actor.ID), shared.EventNotificationsUpdated, shared.InboxChange{NotificationID: &notificationID})
	events.flush(ctx)
	return nil
}

func (uc *notificationUseCaseImpl) MarkAllRead(ctx context.Context, actor shared.Actor) (int64, error) {
	var n int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		n, derr = tx.Inbox().MarkAllRead(ctx, tx.DB(), actor.ID)
		return derr
	})
	if err != nil {
		return 0, markUnexpected(err)
	}

	if n > 0 {
		events := newLiveEvents(uc.feed, uc.clock.Now())
		events.add(shared.InboxTopic(actor.ID), shared.EventNotificationsUpdated, shared.InboxChange{AllRead: true})
		events.flush(ctx)
	}
	return n, nil
}
