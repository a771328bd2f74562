//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, email, name, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, name, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, name, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

// CreateTestMember creates a member user together with a profile holding total credits.
func CreateTestMember(t *testing.T, db DBLike, email, name string, total int) uuid.UUID {
	t.Helper()

	userID := CreateTestUser(t, db, email, name, "member")
	_, err := db.Exec(context.Background(),
		"INSERT INTO member_profiles (user_id, total_sessions) VALUES ($1, $2) ON CONFLICT (user_id) DO UPDATE SET total_sessions = EXCLUDED.total_sessions",
		userID, total)
	require.NoError(t, err)

	return userID
}

func CreateTestSlot(t *testing.T, db DBLike, coachID uuid.UUID, start, end time.Time) uuid.UUID {
	t.Helper()

	slotID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO availability_slots (id, coach_id, start_time, end_time) VALUES ($1, $2, $3, $4)",
		slotID, coachID, start, end)
	require.NoError(t, err)

	return slotID
}

func CountRows(t *testing.T, db DBLike, query string, args ...any) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), query, args...).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
