package bootstrap

import (
	"context"
	"log/slog"

	"fitcoach-booking/internal/pkg/config"
	"fitcoach-booking/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		worker.NewScheduler,
	),
	fx.Invoke(startScheduler),
)

func startScheduler(lc fx.Lifecycle, s *worker.Scheduler, cfg config.Config, logger *slog.Logger) {
	if !cfg.Worker.Enabled {
		logger.Info("background worker disabled")
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
}
