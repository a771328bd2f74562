//go:build unit

package live

import (
	"context"
	"testing"
	"time"

	"fitcoach-booking/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recv(t *testing.T, ch <-chan shared.Event) shared.Event {
	t.Helper()
	select {
	case ev, ok := <-ch:
		require.True(t, ok, "channel closed")
		return ev
	case <-time.After(time.Second):
		t.Fatal("no event received")
		return shared.Event{}
	}
}

func TestHub(t *testing.T) {
	at := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	t.Run("購読中のトピックにだけ配信する", func(t *testing.T) {
		hub := NewHub()
		calendar, cancel1, err := hub.Subscribe(context.Background(), "calendar:a")
		require.NoError(t, err)
		defer cancel1()
		inbox, cancel2, err := hub.Subscribe(context.Background(), "inbox:a")
		require.NoError(t, err)
		defer cancel2()

		ev, _ := shared.NewEvent(shared.EventSlotsPublished, map[string]int{"count": 3}, at)
		require.NoError(t, hub.Publish(context.Background(), "calendar:a", ev))

		got := recv(t, calendar)
		assert.Equal(t, shared.EventSlotsPublished, got.Type)
		assert.JSONEq(t, `{"count":3}`, string(got.Payload))
		select {
		case <-inbox:
			t.Fatal("inbox must not receive calendar events")
		default:
		}
	})

	t.Run("同じトピックの購読者全員に届く", func(t *testing.T) {
		hub := NewHub()
		a, cancelA, _ := hub.Subscribe(context.Background(), "calendar:x")
		defer cancelA()
		b, cancelB, _ := hub.Subscribe(context.Background(), "calendar:x")
		defer cancelB()

		require.NoError(t, hub.Publish(context.Background(), "calendar:x", shared.Event{Type: shared.EventSlotDeleted}))

		assert.Equal(t, shared.EventSlotDeleted, recv(t, a).Type)
		assert.Equal(t, shared.EventSlotDeleted, recv(t, b).Type)
	})

	t.Run("キャンセルでチャネルが閉じる", func(t *testing.T) {
		hub := NewHub()
		ch, cancel, _ := hub.Subscribe(context.Background(), "inbox:y")

		cancel()
		cancel()

		_, ok := <-ch
		assert.False(t, ok)
		assert.NoError(t, hub.Publish(context.Background(), "inbox:y", shared.Event{Type: "x"}))
	})

	t.Run("コンテキスト終了で購読解除される", func(t *testing.T) {
		hub := NewHub()
		ctx, cancelCtx := context.WithCancel(context.Background())
		ch, _, _ := hub.Subscribe(ctx, "inbox:z")

		cancelCtx()

		select {
		case _, ok := <-ch:
			assert.False(t, ok)
		case <-time.After(time.Second):
			t.Fatal("subscription not closed")
		}
	})

	t.Run("詰まった購読者があっても発行はブロックしない", func(t *testing.T) {
		hub := NewHub()
		_, cancel, _ := hub.Subscribe(context.Background(), "calendar:slow")
		defer cancel()

		for range subscriberBuffer + 5 {
			require.NoError(t, hub.Publish(context.Background(), "calendar:slow", shared.Event{Type: "x"}))
		}
	})

	t.Run("クローズ後の購読はエラー", func(t *testing.T) {
		hub := NewHub()
		ch, _, _ := hub.Subscribe(context.Background(), "inbox:c")

		require.NoError(t, hub.Close())

		_, ok := <-ch
		assert.False(t, ok)
		_, _, err := hub.Subscribe(context.Background(), "inbox:c")
		assert.ErrorIs(t, err, ErrFeedClosed)
	})
}
