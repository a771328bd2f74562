package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fitcoach-booking/internal/pkg/config"
	"fitcoach-booking/internal/usecase/commands"

	"github.com/robfig/cron/v3"
)

// jobTimeout bounds a single run so a stuck database call cannot pile runs up.
const jobTimeout = time.Minute

// Scheduler runs the outbox dispatcher and idempotency-key cleanup on cron specs.
type Scheduler struct {
	cron        *cron.Cron
	dispatcher  commands.NotificationDispatcher
	maintenance commands.MaintenanceCommands
	logger      *slog.Logger
}

func NewScheduler(
	dispatcher commands.NotificationDispatcher,
	maintenance commands.MaintenanceCommands,
	cfg config.WorkerConfig,
	logger *slog.Logger,
) (*Scheduler, error) {
	cl := cronLogger{logger: logger}
	s := &Scheduler{
		cron: cron.New(cron.WithLogger(cl), cron.WithChain(
			cron.Recover(cl),
			cron.SkipIfStillRunning(cl),
		)),
		dispatcher:  dispatcher,
		maintenance: maintenance,
		logger:      logger,
	}

	if _, err := s.cron.AddFunc(cfg.DispatchSpec, s.DispatchNotifications); err != nil {
		return nil, fmt.Errorf("invalid dispatch spec %q: %w", cfg.DispatchSpec, err)
	}
	if _, err := s.cron.AddFunc(cfg.IdempotencyCleanupSpec, s.PurgeIdempotencyKeys); err != nil {
		return nil, fmt.Errorf("invalid idempotency cleanup spec %q: %w", cfg.IdempotencyCleanupSpec, err)
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("worker scheduler started", "jobs", len(s.cron.Entries()))
}

// Stop waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) DispatchNotifications() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	res, err := s.dispatcher.DispatchDue(ctx)
	if err != nil {
		s.logger.Error("notification dispatch failed", "error", err)
	}
	if res != nil && res.Delivered+res.Retried+res.Dead > 0 {
		s.logger.Info("notification dispatch finished",
			"delivered", res.Delivered,
			"retried", res.Retried,
			"dead", res.Dead)
	}
}

func (s *Scheduler) PurgeIdempotencyKeys() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	n, err := s.maintenance.PurgeExpiredIdempotencyKeys(ctx)
	if err != nil {
		s.logger.Error("idempotency key cleanup failed", "error", err)
		return
	}
	if n > 0 {
		s.logger.Info("expired idempotency keys purged", "count", n)
	}
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}
