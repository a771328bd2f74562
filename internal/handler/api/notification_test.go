//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"fitcoach-booking/internal/domain/user"
	"fitcoach-booking/internal/handler/api"
	resdto "fitcoach-booking/internal/handler/dto/response"
	"fitcoach-booking/internal/pkg/config"
	"fitcoach-booking/internal/usecase/commands"
	"fitcoach-booking/internal/usecase/queries"
	"fitcoach-booking/internal/usecase/shared"
	"fitcoach-booking/tests/common/builder"
	"fitcoach-booking/tests/common/httptest"
	commandsmock "fitcoach-booking/tests/mock/commands"
	queriesmock "fitcoach-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type NotificationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockNotificationCommands
	mockQueries  *queriesmock.MockNotificationQueries
	member       shared.Actor
}

func (s *NotificationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockNotificationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockNotificationQueries(s.mockCtrl)
	handler := api.NewNotificationHandler(s.mockCommands, s.mockQueries)

	s.member = shared.Actor{ID: uuid.New(), Role: user.RoleMember}

	s.router.GET("/notifications", fakeAuth(s.member), handler.List)
	s.router.GET("/notifications/unread-count", fakeAuth(s.member), handler.UnreadCount)
	s.router.POST("/notifications/:id/read", fakeAuth(s.member), handler.MarkRead)
	s.router.POST("/notifications/read-all", fakeAuth(s.member), handler.MarkAllRead)
}

func (s *NotificationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestNotificationHandlerSuite(t *testing.T) {
	suite.Run(t, new(NotificationHandlerTestSuite))
}

func (s *NotificationHandlerTestSuite) TestList() {
	items := []*queries.NotificationView{
		{ID: uuid.New(), UserID: s.member.ID, Message: "박코치 confirmed your session on 2025-03-14 09:00-10:00", CreatedAt: time.Now()},
	}

	s.Run("最初のページと次のカーソルを返す", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), s.member.ID, (*queries.Cursor)(nil), 1).
			Return(items, &queries.Cursor{After: "next-page"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notifications?limit=1", nil, "token")

		var body resdto.NotificationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Notifications, 1)
		s.Equal(items[0].Message, body.Notifications[0].Message)
		s.Require().NotNil(body.NextCursor)
		s.Equal("next-page", *body.NextCursor)
	})

	s.Run("カーソル付きで続きを取得する", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), s.member.ID, &queries.Cursor{After: "next-page"}, 0).
			Return(nil, nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notifications?after=next-page", nil, "token")

		var body resdto.NotificationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Notifications)
		s.Nil(body.NextCursor)
	})

	s.Run("壊れたカーソルは400", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notifications?after=broken", nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("上限を超えるlimitは400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notifications?limit=201", nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})
}

func (s *NotificationHandlerTestSuite) TestReadState() {
	s.Run("未読数を返す", func() {
		s.mockQueries.EXPECT().UnreadCount(gomock.Any(), s.member.ID).Return(int64(3), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notifications/unread-count", nil, "token")

		var body resdto.UnreadCountResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(3), body.Unread)
	})

	s.Run("既読にすると204", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().MarkRead(gomock.Any(), s.member, id).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/notifications/"+id.String()+"/read", nil, "token")

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("他人の通知は404", func() {
		s.mockCommands.EXPECT().MarkRead(gomock.Any(), gomock.Any(), gomock.Any()).Return(commands.ErrNotificationNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/notifications/"+uuid.NewString()+"/read", nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("全件既読は更新件数を返す", func() {
		s.mockCommands.EXPECT().MarkAllRead(gomock.Any(), s.member).Return(int64(2), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/notifications/read-all", nil, "token")

		var body map[string]int64
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(2), body["updated"])
	})
}

// ================================================================================
// Member
// ================================================================================

func TestMemberHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	members := queriesmock.NewMockMemberQueries(ctrl)
	users := queriesmock.NewMockUserQueries(ctrl)
	handler := api.NewMemberHandler(members, users)

	coach := shared.Actor{ID: uuid.New(), Role: user.RoleCoach}
	router := gin.New()
	router.GET("/members/:memberID/credit", fakeAuth(coach), handler.Credit)
	router.GET("/me", fakeAuth(coach), handler.Me)

	t.Run("残り回数と確定済み件数の照合結果を返す", func(t *testing.T) {
		memberID := uuid.New()
		members.EXPECT().GetCredit(gomock.Any(), coach, memberID).Return(&queries.MemberCreditView{
			MemberID: memberID, TotalSessions: 10, UsedSessions: 2, RemainingSessions: 8, ConfirmedCount: 2, InSync: true,
		}, nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/members/"+memberID.String()+"/credit", nil, "token")

		var body resdto.MemberCreditResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, int32(8), body.RemainingSessions)
		assert.True(t, body.InSync)
	})

	t.Run("他人の残り回数は403", func(t *testing.T) {
		members.EXPECT().GetCredit(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, queries.ErrCreditAccess)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/members/"+uuid.NewString()+"/credit", nil, "token")

		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "")
	})

	t.Run("ログイン中のユーザーを返す", func(t *testing.T) {
		view := builder.NewUserBuilder().AsCoach().BuildReadModel()
		users.EXPECT().GetCurrentUser(gomock.Any(), coach.ID).Return(view, nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, "token")

		var body resdto.UserResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, "박코치", body.Name)
		assert.Equal(t, "coach", body.Role)
	})
}

// ================================================================================
// Live
// ================================================================================

// stubSubscriber replays fixed events on a closed channel so the stream ends on its own.
type stubSubscriber struct {
	events []shared.Event
	err    error
	topics []string
}

func (s *stubSubscriber) Subscribe(_ context.Context, topic string) (<-chan shared.Event, func(), error) {
	if s.err != nil {
		return nil, nil, s.err
	}
	s.topics = append(s.topics, topic)
	ch := make(chan shared.Event, len(s.events))
	for _, ev := range s.events {
		ch <- ev
	}
	close(ch)
	return ch, func() {}, nil
}

func TestLiveHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()
	member := shared.Actor{ID: uuid.New(), Role: user.RoleMember}
	coachID := uuid.New()

	newRouter := func(t *testing.T, sub *stubSubscriber) (*gin.Engine, *queriesmock.MockSlotQueries, *queriesmock.MockNotificationQueries) {
		ctrl := gomock.NewController(t)
		slots := queriesmock.NewMockSlotQueries(ctrl)
		inbox := queriesmock.NewMockNotificationQueries(ctrl)
		handler := api.NewLiveHandler(sub, slots, inbox, cfg)
		router := gin.New()
		router.GET("/live/coaches/:coachID/calendar", fakeAuth(member), handler.Calendar)
		router.GET("/live/notifications", fakeAuth(member), handler.Inbox)
		return router, slots, inbox
	}

	t.Run("カレンダーはスナップショットの後に変更イベントを流す", func(t *testing.T) {
		payload, err := json.Marshal(map[string]string{"slotId": uuid.NewString()})
		require.NoError(t, err)
		sub := &stubSubscriber{events: []shared.Event{{Type: shared.EventSlotDeleted, Payload: payload, OccurredAt: time.Now()}}}
		router, slots, _ := newRouter(t, sub)
		slots.EXPECT().Calendar(gomock.Any(), member, coachID, gomock.Any()).
			Return(&queries.CalendarSnapshot{CoachID: coachID}, nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/live/coaches/"+coachID.String()+"/calendar", nil, "token")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/event-stream"), rec.Header().Get("Content-Type"))
		assert.Equal(t, []string{shared.CalendarTopic(coachID)}, sub.topics)
		out := rec.Body.String()
		snapshotAt := strings.Index(out, "event:snapshot")
		deletedAt := strings.Index(out, "event:"+shared.EventSlotDeleted)
		require.GreaterOrEqual(t, snapshotAt, 0, out)
		require.Greater(t, deletedAt, snapshotAt, out)
	})

	t.Run("会員には他の会員の予約イベントを流さない", func(t *testing.T) {
		otherMember := uuid.New()
		change := func(eventType string, memberID uuid.UUID) shared.Event {
			ev, err := shared.NewEvent(eventType, shared.AppointmentChange{ID: uuid.New(), CoachID: coachID, MemberID: memberID, Status: "pending"}, time.Now())
			require.NoError(t, err)
			return ev
		}
		sub := &stubSubscriber{events: []shared.Event{
			change(shared.EventAppointmentCreated, otherMember),
			change(shared.EventAppointmentUpdated, member.ID),
		}}
		router, slots, _ := newRouter(t, sub)
		slots.EXPECT().Calendar(gomock.Any(), member, coachID, gomock.Any()).
			Return(&queries.CalendarSnapshot{CoachID: coachID}, nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/live/coaches/"+coachID.String()+"/calendar", nil, "token")

		require.Equal(t, http.StatusOK, rec.Code)
		out := rec.Body.String()
		assert.NotContains(t, out, otherMember.String())
		assert.NotContains(t, out, "event:"+shared.EventAppointmentCreated)
		assert.Contains(t, out, "event:"+shared.EventAppointmentUpdated)
		assert.Contains(t, out, member.ID.String())
	})

	t.Run("受信箱は未読数のスナップショットから始まる", func(t *testing.T) {
		sub := &stubSubscriber{}
		router, _, inbox := newRouter(t, sub)
		inbox.EXPECT().UnreadCount(gomock.Any(), member.ID).Return(int64(4), nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/live/notifications", nil, "token")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []string{shared.InboxTopic(member.ID)}, sub.topics)
		assert.Contains(t, rec.Body.String(), `"unread":4`)
	})

	t.Run("購読できなければ503", func(t *testing.T) {
		router, _, _ := newRouter(t, &stubSubscriber{err: errors.New("redis down")})

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/live/notifications", nil, "token")

		httptest.AssertErrorResponse(t, rec, http.StatusServiceUnavailable, "Live updates are unavailable")
	})

	t.Run("閲覧できないカレンダーは403", func(t *testing.T) {
		router, slots, _ := newRouter(t, &stubSubscriber{})
		slots.EXPECT().Calendar(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, commands.ErrForbidden)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/live/coaches/"+coachID.String()+"/calendar", nil, "token")

		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "")
	})
}

// ================================================================================
// Health
// ================================================================================

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ok := pingerFunc(func(context.Context) error { return nil })
	down := pingerFunc(func(context.Context) error { return errors.New("connection refused") })

	tests := []struct {
		name       string
		checks     map[string]api.Pinger
		wantStatus int
		wantDeps   map[string]any
	}{
		{
			name:       "全依存先が応答すれば200",
			checks:     map[string]api.Pinger{"postgres": ok, "redis": ok},
			wantStatus: http.StatusOK,
			wantDeps:   map[string]any{"postgres": "ok", "redis": "ok"},
		},
		{
			name:       "一つでも落ちていれば503",
			checks:     map[string]api.Pinger{"postgres": ok, "redis": down},
			wantStatus: http.StatusServiceUnavailable,
			wantDeps:   map[string]any{"postgres": "ok", "redis": "connection refused"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/health", api.NewHealthHandler(tt.checks).Check)

			rec := httptest.PerformRequest(t, router, http.MethodGet, "/health", nil, "")

			require.Equal(t, tt.wantStatus, rec.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantDeps, body["dependencies"])
		})
	}
}
