//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"fitcoach-booking/internal/infra"
	sqlc "fitcoach-booking/internal/infra/sqlc/generated"
	"fitcoach-booking/internal/pkg/pgconv"
	"fitcoach-booking/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

type MockAppointmentViewQueries struct {
	mock.Mock
}

func (m *MockAppointmentViewQueries) GetAppointmentByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Appointments, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Appointments), args.Error(1)
}

func (m *MockAppointmentViewQueries) ListAppointmentsByCoach(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAppointmentsByCoachParams) ([]sqlc.Appointments, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.Appointments), args.Error(1)
}

func (m *MockAppointmentViewQueries) ListAppointmentsByMember(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAppointmentsByMemberParams) ([]sqlc.Appointments, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.Appointments), args.Error(1)
}

type MockMemberReadQueries struct {
	mock.Mock
}

func (m *MockMemberReadQueries) GetMemberCredit(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (sqlc.GetMemberCreditRow, error) {
	args := m.Called(ctx, db, userID)
	return args.Get(0).(sqlc.GetMemberCreditRow), args.Error(1)
}

func (m *MockMemberReadQueries) GetMemberWithProfile(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetMemberWithProfileRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.GetMemberWithProfileRow), args.Error(1)
}

type MockNotificationViewQueries struct {
	mock.Mock
}

func (m *MockNotificationViewQueries) ListNotificationsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListNotificationsFirstPageParams) ([]sqlc.Notifications, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.Notifications), args.Error(1)
}

func (m *MockNotificationViewQueries) ListNotificationsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListNotificationsKeysetParams) ([]sqlc.Notifications, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.Notifications), args.Error(1)
}

func (m *MockNotificationViewQueries) CountUnreadNotifications(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, userID)
	return args.Get(0).(int64), args.Error(1)
}

var ts = time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

func TestUserReadStore_FindByID(t *testing.T) {
	id := uuid.New()
	row := sqlc.Users{ID: id, Email: "coach@example.com", Name: "박코치", Role: "coach", IsActive: true}

	tests := []struct {
		name      string
		mockRow   sqlc.Users
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "取得成功", mockRow: row},
		{name: "存在しない", mockRow: sqlc.Users{}, mockError: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "DBエラー", mockRow: sqlc.Users{}, mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockUserReadQueries)
			q.On("GetUserByID", mock.Anything, mock.Anything, id).Return(tt.mockRow, tt.mockError)
			store := NewUserReadStore(q, nil)

			got, err := store.FindByID(context.Background(), id)

			if tt.mockError != nil {
				require.Error(t, err)
				assert.Nil(t, got)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, "박코치", got.Name)
				assert.Equal(t, "coach", got.Role)
			}
			q.AssertExpectations(t)
		})
	}
}

func TestAppointmentReadStore(t *testing.T) {
	coachID := uuid.New()
	row := sqlc.Appointments{
		ID:                 uuid.New(),
		CoachID:            coachID,
		MemberID:           uuid.New(),
		MemberName:         "김민지",
		MemberEmail:        "member@example.com",
		StartTime:          pgconv.TimeToPgtype(ts.Add(9 * time.Hour)),
		EndTime:            pgconv.TimeToPgtype(ts.Add(10 * time.Hour)),
		Status:             "cancelled_by_trainer",
		CancellationReason: pgtype.Text{String: "휴관", Valid: true},
		CreatedAt:          pgconv.TimeToPgtype(ts),
		UpdatedAt:          pgconv.TimeToPgtype(ts),
	}

	t.Run("行をビューへ変換する", func(t *testing.T) {
		q := new(MockAppointmentViewQueries)
		q.On("GetAppointmentByID", mock.Anything, mock.Anything, row.ID).Return(row, nil)

		got, err := NewAppointmentReadStore(q, nil).FindByID(context.Background(), row.ID)

		require.NoError(t, err)
		reason := "휴관"
		want := &queries.AppointmentView{
			ID:                 row.ID,
			CoachID:            coachID,
			MemberID:           row.MemberID,
			MemberName:         "김민지",
			MemberEmail:        "member@example.com",
			StartTime:          ts.Add(9 * time.Hour),
			EndTime:            ts.Add(10 * time.Hour),
			Status:             "cancelled_by_trainer",
			CancellationReason: &reason,
			CreatedAt:          ts,
			UpdatedAt:          ts,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("view mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("存在しない予約はNOT_FOUND", func(t *testing.T) {
		q := new(MockAppointmentViewQueries)
		q.On("GetAppointmentByID", mock.Anything, mock.Anything, mock.Anything).Return(sqlc.Appointments{}, pgx.ErrNoRows)

		_, err := NewAppointmentReadStore(q, nil).FindByID(context.Background(), uuid.New())

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("ステータス未指定はNULLで渡す", func(t *testing.T) {
		q := new(MockAppointmentViewQueries)
		q.On("ListAppointmentsByCoach", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.ListAppointmentsByCoachParams) bool {
			return p.CoachID == coachID && !p.Status.Valid
		})).Return([]sqlc.Appointments{row}, nil)

		got, err := NewAppointmentReadStore(q, nil).ListByCoach(context.Background(), coachID, ts, ts.Add(24*time.Hour), nil)

		require.NoError(t, err)
		assert.Len(t, got, 1)
		q.AssertExpectations(t)
	})
}

func TestMemberReadStore_FindCredit(t *testing.T) {
	memberID := uuid.New()

	t.Run("集計値をそのまま返す", func(t *testing.T) {
		q := new(MockMemberReadQueries)
		q.On("GetMemberCredit", mock.Anything, mock.Anything, memberID).
			Return(sqlc.GetMemberCreditRow{UserID: memberID, TotalSessions: 10, UsedSessions: 3, ConfirmedCount: 3}, nil)

		got, err := NewMemberReadStore(q, nil).FindCredit(context.Background(), memberID)

		require.NoError(t, err)
		assert.Equal(t, int32(10), got.TotalSessions)
		assert.Equal(t, int32(3), got.UsedSessions)
		assert.Equal(t, int64(3), got.ConfirmedCount)
	})

	t.Run("プロフィールなしはNOT_FOUND", func(t *testing.T) {
		q := new(MockMemberReadQueries)
		q.On("GetMemberCredit", mock.Anything, mock.Anything, memberID).Return(sqlc.GetMemberCreditRow{}, pgx.ErrNoRows)

		_, err := NewMemberReadStore(q, nil).FindCredit(context.Background(), memberID)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestNotificationReadStore(t *testing.T) {
	userID := uuid.New()
	rows := []sqlc.Notifications{
		{ID: uuid.New(), UserID: userID, Message: "new request", CreatedAt: pgconv.TimeToPgtype(ts.Add(time.Minute))},
		{ID: uuid.New(), UserID: userID, Message: "confirmed", Read: true, CreatedAt: pgconv.TimeToPgtype(ts)},
	}

	t.Run("キーセットの境界をパラメータに渡す", func(t *testing.T) {
		lastID := uuid.New()
		q := new(MockNotificationViewQueries)
		q.On("ListNotificationsKeyset", mock.Anything, mock.Anything, sqlc.ListNotificationsKeysetParams{
			UserID:         userID,
			AfterCreatedAt: pgconv.TimeToPgtype(ts),
			AfterID:        lastID,
			Lim:            21,
		}).Return(rows, nil)

		got, err := NewNotificationReadStore(q, nil).FindKeyset(context.Background(), userID, ts, lastID, 21)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "new request", got[0].Message)
		assert.True(t, got[1].Read)
		q.AssertExpectations(t)
	})

	t.Run("未読数のDBエラーを分類する", func(t *testing.T) {
		q := new(MockNotificationViewQueries)
		q.On("CountUnreadNotifications", mock.Anything, mock.Anything, userID).Return(int64(0), assert.AnError)

		_, err := NewNotificationReadStore(q, nil).CountUnread(context.Background(), userID)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
