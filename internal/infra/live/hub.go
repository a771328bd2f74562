package live

import (
	"context"
	"log/slog"
	"sync"

	"fitcoach-booking/internal/usecase/shared"
)

const subscriberBuffer = 32

// Hub is an in-process feed for single-instance deployments and tests.
type Hub struct {
	mu     sync.RWMutex
	topics map[string]map[*subscriber]struct{}
	closed bool
}

type subscriber struct {
	ch   chan shared.Event
	once sync.Once
}

func (s *subscriber) close() {
	s.once.Do(func() { close(s.ch) })
}

func NewHub() *Hub {
	return &Hub{
		topics: make(map[string]map[*subscriber]struct{}),
	}
}

// Publish never blocks; a subscriber whose buffer is full misses the event.
func (h *Hub) Publish(_ context.Context, topic string, event shared.Event) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.topics[topic] {
		select {
		case sub.ch <- event:
		default:
			slog.Warn("live subscriber lagging, event dropped", "topic", topic, "type", event.Type)
		}
	}
	return nil
}

func (h *Hub) Subscribe(ctx context.Context, topic string) (<-chan shared.Event, func(), error) {
	sub := &subscriber{ch: make(chan shared.Event, subscriberBuffer)}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil, nil, ErrFeedClosed
	}
	set, ok := h.topics[topic]
	if !ok {
		set = make(map[*subscriber]struct{})
		h.topics[topic] = set
	}
	set[sub] = struct{}{}
	h.mu.Unlock()

	done := make(chan struct{})
	var once sync.Once
	cancel := func() {
		once.Do(func() {
			close(done)
			h.unregister(topic, sub)
		})
	}

	go func() {
		select {
		case <-ctx.Done():
			cancel()
		case <-done:
		}
	}()

	return sub.ch, cancel, nil
}

func (h *Hub) unregister(topic string, sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.topics[topic]
	if !ok {
		return
	}
	if _, exists := set[sub]; exists {
		delete(set, sub)
		sub.close()
	}
	if len(set) == 0 {
		delete(h.topics, topic)
	}
}

// Close ends every open subscription.
func (h *Hub) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for topic, set := range h.topics {
		for sub := range set {
			sub.close()
		}
		delete(h.topics, topic)
	}
	h.closed = true
	return nil
}
