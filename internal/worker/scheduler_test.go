//go:build unit

package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"fitcoach-booking/internal/pkg/config"
	"fitcoach-booking/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDispatcher struct {
	calls atomic.Int32
	err   error
}

func (d *stubDispatcher) DispatchDue(ctx context.Context) (*commands.DispatchResult, error) {
	d.calls.Add(1)
	if _, ok := ctx.Deadline(); !ok {
		return nil, errors.New("dispatch must run with a deadline")
	}
	return &commands.DispatchResult{Delivered: 1}, d.err
}

type stubMaintenance struct {
	calls atomic.Int32
}

func (m *stubMaintenance) PurgeExpiredIdempotencyKeys(context.Context) (int64, error) {
	m.calls.Add(1)
	return 3, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewScheduler(t *testing.T) {
	cfg := config.NewTestConfig().Worker

	t.Run("二つのジョブが登録される", func(t *testing.T) {
		s, err := NewScheduler(&stubDispatcher{}, &stubMaintenance{}, cfg, discardLogger())

		require.NoError(t, err)
		assert.Len(t, s.cron.Entries(), 2)
	})

	t.Run("不正なcron指定はエラー", func(t *testing.T) {
		bad := cfg
		bad.DispatchSpec = "every now and then"

		_, err := NewScheduler(&stubDispatcher{}, &stubMaintenance{}, bad, discardLogger())

		assert.Error(t, err)
	})
}

func TestSchedulerJobs(t *testing.T) {
	d := &stubDispatcher{err: errors.New("db down")}
	m := &stubMaintenance{}
	s, err := NewScheduler(d, m, config.NewTestConfig().Worker, discardLogger())
	require.NoError(t, err)

	s.DispatchNotifications()
	s.PurgeIdempotencyKeys()

	assert.Equal(t, int32(1), d.calls.Load())
	assert.Equal(t, int32(1), m.calls.Load())
}

func TestSchedulerStartStop(t *testing.T) {
	d := &stubDispatcher{}
	cfg := config.NewTestConfig().Worker
	cfg.DispatchSpec = "@every 1s"
	s, err := NewScheduler(d, &stubMaintenance{}, cfg, discardLogger())
	require.NoError(t, err)

	s.Start()
	assert.Eventually(t, func() bool { return d.calls.Load() > 0 }, 3*time.Second, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, s.Stop(ctx))
}
