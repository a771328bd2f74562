//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"fitcoach-booking/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr_Classify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want infra.RepositoryErrorKind
	}{
		{name: "行なし", err: pgx.ErrNoRows, want: infra.KindNotFound},
		{name: "一意制約", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "外部キー", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "チェック制約", err: &pgconn.PgError{Code: "23514"}, want: infra.KindCheckViolated},
		{name: "その他", err: errors.New("connection reset"), want: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := infra.WrapRepoErr("op failed", tt.err)

			assert.True(t, infra.IsKind(err, tt.want))
			assert.ErrorIs(t, err, tt.err)
			assert.Contains(t, err.Error(), "op failed")
		})
	}
}

func TestWrapRepoErr_ExplicitKind(t *testing.T) {
	err := infra.WrapRepoErr("stale", nil, infra.KindConflict)

	assert.True(t, infra.IsKind(err, infra.KindConflict))
	assert.False(t, infra.IsKind(err, infra.KindDBFailure))
	assert.Equal(t, "CONFLICT: stale", err.Error())
}
