package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"fitcoach-booking/internal/domain/notification"
	"fitcoach-booking/internal/infra"
	"fitcoach-booking/internal/pkg/clock"
	"fitcoach-booking/internal/pkg/config"
	"fitcoach-booking/internal/pkg/errs"
	"fitcoach-booking/internal/usecase/shared"
)

var errNoDueJob = errs.New("no due notification job")

type DispatchResult struct {
	Delivered int
	Retried   int
	Dead      int
}

// NotificationDispatcher drains the outbox into member and coach inboxes.
type NotificationDispatcher interface {
	DispatchDue(ctx context.Context) (*DispatchResult, error)
}

type MaintenanceCommands interface {
	PurgeExpiredIdempotencyKeys(ctx context.Context) (int64, error)
}

type dispatcherImpl struct {
	uow         shared.UnitOfWork
	feed        shared.EventPublisher
	clock       clock.Clock
	loc         *time.Location
	batchSize   int
	maxAttempts int
	retryBase   time.Duration
}

func NewNotificationDispatcher(
	uow shared.UnitOfWork,
	feed shared.EventPublisher,
	clk clock.Clock,
	booking config.BookingConfig,
	worker config.WorkerConfig,
) (NotificationDispatcher, error) {
	loc, err := booking.Location()
	if err != nil {
		return nil, err
	}
	return &dispatcherImpl{
		uow:         uow,
		feed:        feed,
		clock:       clk,
		loc:         loc,
		batchSize:   worker.BatchSize,
		maxAttempts: worker.MaxAttempts,
		retryBase:   worker.RetryBase,
	}, nil
}

// DispatchDue delivers up to one batch of due jobs, each in its own transaction.
func (d *dispatcherImpl) DispatchDue(ctx context.Context) (*DispatchResult, error) {
	res := &DispatchResult{}
	for range d.batchSize {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
		err := d.dispatchOne(ctx, res)
		if errs.Is(err, errNoDueJob) {
			break
		}
		if err != nil {
			return res, err
		}
	}
	return res, nil
}

func (d *dispatcherImpl) dispatchOne(ctx context.Context, res *DispatchResult) error {
	now := d.clock.Now()

	var job *shared.NotificationJob
	var delivered *notification.Notification
	var deliveryErr error
	var buried bool
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		delivered, deliveryErr, buried = nil, nil, false

		var derr error
		job, derr = tx.Notifications().ClaimDue(ctx, tx.DB(), now)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errNoDueJob
			}
			return derr
		}

		n, derr := d.render(job, now)
		if derr != nil {
			// An undecodable payload will never succeed
			msg := derr.Error()
			slog.Error("notification job is malformed", "job_id", job.ID, "error", msg)
			buried = true
			return tx.Notifications().UpdateJobStatus(ctx, tx.DB(), job.ID, notification.JobDead, job.Attempts+1, &msg, job.RunAt)
		}

		if _, derr = tx.Inbox().Deliver(ctx, tx.DB(), n); derr != nil {
			deliveryErr = derr
			return derr
		}
		delivered = n
		return tx.Notifications().UpdateJobStatus(ctx, tx.DB(), job.ID, notification.JobSent, job.Attempts+1, nil, job.RunAt)
	})

	switch {
	case err == nil:
	case errs.Is(err, errNoDueJob):
		return err
	case deliveryErr != nil:
		return d.recordFailure(ctx, job, deliveryErr, now, res)
	default:
		return err
	}

	if buried {
		res.Dead++
	}
	if delivered != nil {
		res.Delivered++
		id := delivered.ID()
		events := newLiveEvents(d.feed, now)
		events.add(shared.InboxTopic(delivered.UserID()), shared.EventNotificationCreated, shared.InboxChange{
			NotificationID: &id,
			Message:        delivered.Message(),
		})
		events.flush(ctx)
	}
	return nil
}

// recordFailure pushes the job back by attempts * retryBase, or buries it after maxAttempts.
func (d *dispatcherImpl) recordFailure(ctx context.Context, job *shared.NotificationJob, cause error, now time.Time, res *DispatchResult) error {
	attempts := job.Attempts + 1
	status := notification.JobQueued
	runAt := now.Add(time.Duration(attempts) * d.retryBase)
	if attempts >= d.maxAttempts {
		status = notification.JobDead
		runAt = job.RunAt
	}
	msg := cause.Error()

	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().UpdateJobStatus(ctx, tx.DB(), job.ID, status, attempts, &msg, runAt)
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if status == notification.JobDead {
		res.Dead++
		slog.Error("notification job gave up", "job_id", job.ID, "attempts", attempts, "error", msg)
	} else {
		res.Retried++
		slog.Warn("notification delivery failed, will retry", "job_id", job.ID, "attempts", attempts, "run_at", runAt, "error", msg)
	}
	return nil
}

func (d *dispatcherImpl) render(job *shared.NotificationJob, now time.Time) (*notification.Notification, error) {
	var p notification.Payload
	if err := json.Unmarshal(job.Payload, &p); err != nil {
		return nil, errs.Wrap(err, "failed to decode notification payload")
	}
	msg, err := p.Message(d.loc)
	if err != nil {
		return nil, err
	}
	return notification.NewNotification(job.RecipientID, job.ID, msg, now)
}

type maintenanceImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewMaintenanceUseCase(uow shared.UnitOfWork, clk clock.Clock) MaintenanceCommands {
	return &maintenanceImpl{uow: uow, clock: clk}
}

func (m *maintenanceImpl) PurgeExpiredIdempotencyKeys(ctx context.Context) (int64, error) {
	var n int64
	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		n, derr = tx.Idempotency().DeleteExpired(ctx, tx.DB(), m.clock.Now())
		return derr
	})
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return n, nil
}
