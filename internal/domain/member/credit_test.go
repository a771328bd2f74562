//go:build unit

package member_test

import (
	"testing"

	"fitcoach-booking/internal/domain/member"
	"fitcoach-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCredit(t *testing.T) {
	tests := []struct {
		name        string
		total, used int
		wantErr     bool
	}{
		{name: "未使用", total: 10, used: 0},
		{name: "使い切り", total: 10, used: 10},
		{name: "使用数が総数超過", total: 10, used: 11, wantErr: true},
		{name: "使用数が負", total: 10, used: -1, wantErr: true},
		{name: "総数が負", total: -1, used: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := member.NewCredit(uuid.New(), tt.total, tt.used)

			if tt.wantErr {
				assert.ErrorIs(t, err, member.ErrInvalidCredit)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.total-tt.used, c.Remaining())
		})
	}
}

func TestCredit_Apply(t *testing.T) {
	t.Run("消費と返却", func(t *testing.T) {
		c, _ := member.NewCredit(uuid.New(), 2, 0)

		require.NoError(t, c.Apply(1))
		assert.Equal(t, 1, c.Used())
		require.NoError(t, c.Apply(-1))
		assert.Equal(t, 0, c.Used())
		require.NoError(t, c.Apply(0))
		assert.Equal(t, 0, c.Used())
	})

	t.Run("残りがなければ消費不可", func(t *testing.T) {
		c, _ := member.NewCredit(uuid.New(), 1, 1)

		err := c.Apply(1)

		assert.ErrorIs(t, err, errs.ErrCreditExhausted)
		assert.Equal(t, 1, c.Used())
	})

	t.Run("未使用なら返却不可", func(t *testing.T) {
		c, _ := member.NewCredit(uuid.New(), 1, 0)

		err := c.Apply(-1)

		assert.ErrorIs(t, err, member.ErrNoCreditToRelease)
		assert.Equal(t, 0, c.Used())
	})

	t.Run("不正な差分", func(t *testing.T) {
		c, _ := member.NewCredit(uuid.New(), 5, 2)

		assert.ErrorIs(t, c.Apply(2), member.ErrInvalidDelta)
	})
}

func TestCredit_InSync(t *testing.T) {
	c, _ := member.NewCredit(uuid.New(), 10, 3)

	assert.True(t, c.InSync(3))
	assert.False(t, c.InSync(2))
}
