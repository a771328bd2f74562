package live

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"fitcoach-booking/internal/pkg/config"
	"fitcoach-booking/internal/pkg/errs"
	"fitcoach-booking/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

var ErrFeedClosed = errs.New("live feed closed")

const channelPrefix = "fitcoach:live:"

// RedisFeed relays events through Redis pub/sub so every API instance sees them.
type RedisFeed struct {
	client *redis.Client
}

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func NewRedisFeed(client *redis.Client) *RedisFeed {
	return &RedisFeed{client: client}
}

func (f *RedisFeed) Ping(ctx context.Context) error {
	if err := f.client.Ping(ctx).Err(); err != nil {
		return errs.Wrap(err, "failed to connect to redis")
	}
	return nil
}

func (f *RedisFeed) Publish(ctx context.Context, topic string, event shared.Event) error {
	b, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to encode live event")
	}
	if err := f.client.Publish(ctx, channelPrefix+topic, b).Err(); err != nil {
		return errs.Wrapf(err, "failed to publish to %s", topic)
	}
	return nil
}

func (f *RedisFeed) Subscribe(ctx context.Context, topic string) (<-chan shared.Event, func(), error) {
	pubsub := f.client.Subscribe(ctx, channelPrefix+topic)
	// Receive waits for the subscription confirmation
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, nil, errs.Wrapf(err, "failed to subscribe to %s", topic)
	}

	out := make(chan shared.Event, subscriberBuffer)
	done := make(chan struct{})
	var once sync.Once
	cancel := func() {
		once.Do(func() {
			close(done)
			_ = pubsub.Close()
		})
	}

	go func() {
		defer close(out)
		msgs := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				cancel()
				return
			case <-done:
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var event shared.Event
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					slog.Warn("dropping malformed live event", "topic", topic, "error", err.Error())
					continue
				}
				select {
				case out <- event:
				default:
					slog.Warn("live subscriber lagging, event dropped", "topic", topic, "type", event.Type)
				}
			}
		}
	}()

	return out, cancel, nil
}

func (f *RedisFeed) Close() error {
	return f.client.Close()
}
