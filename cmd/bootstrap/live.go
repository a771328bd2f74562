package bootstrap

import (
	"context"
	"log/slog"

	"fitcoach-booking/internal/infra/live"
	"fitcoach-booking/internal/pkg/config"
	"fitcoach-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var LiveModule = fx.Module("live",
	fx.Provide(
		NewLiveFeed,
		func(f shared.LiveFeed) shared.EventPublisher { return f },
		func(f shared.LiveFeed) shared.EventSubscriber { return f },
	),
)

type closableFeed interface {
	shared.LiveFeed
	Close() error
}

// NewLiveFeed fans events out through Redis when an address is configured so
// several API instances share one stream; otherwise events stay in process.
func NewLiveFeed(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.LiveFeed, *live.RedisFeed) {
	var (
		feed  closableFeed
		redis *live.RedisFeed
	)
	if cfg.Redis.Addr != "" {
		redis = live.NewRedisFeed(live.NewRedisClient(cfg.Redis))
		feed = redis
		logger.Info("live feed backed by redis", "addr", cfg.Redis.Addr)
	} else {
		feed = live.NewHub()
		logger.Info("live feed running in process")
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return feed.Close()
		},
	})

	return feed, redis
}
