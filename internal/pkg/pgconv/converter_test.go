//go:build unit

package pgconv_test

import (
	"errors"
	"testing"
	"time"

	"fitcoach-booking/internal/pkg/errs"
	"fitcoach-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDRoundTrip(t *testing.T) {
	id := uuid.New()

	got := pgconv.UUIDPtrFromPgtype(pgconv.UUIDPtrToPgtype(&id))

	require.NotNil(t, got)
	assert.Equal(t, id, *got)
	assert.Nil(t, pgconv.UUIDPtrFromPgtype(pgconv.UUIDPtrToPgtype(nil)))
}

func TestText(t *testing.T) {
	assert.Equal(t, "", pgconv.StringFromPgtype(pgtype.Text{}))
	assert.Nil(t, pgconv.StringPtrFromPgtype(pgconv.StringPtrToPgtype(nil)))
	assert.Equal(t, "휴관", *pgconv.StringPtrFromPgtype(pgconv.StringToPgtype("휴관")))
}

func TestTimesToPgtype(t *testing.T) {
	now := time.Now()

	got := pgconv.TimesToPgtype([]time.Time{now, now.Add(time.Hour)})

	require.Len(t, got, 2)
	assert.True(t, got[1].Valid)
	assert.Equal(t, now.Add(time.Hour), got[1].Time)
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(errs.Wrap(pgx.ErrNoRows, "find")))
	assert.False(t, pgconv.IsNoRows(errors.New("other")))
}
