//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"fitcoach-booking/internal/domain/availability"
	"fitcoach-booking/internal/domain/schedule"
	"fitcoach-booking/internal/domain/user"
	"fitcoach-booking/internal/handler/api"
	reqdto "fitcoach-booking/internal/handler/dto/request"
	resdto "fitcoach-booking/internal/handler/dto/response"
	"fitcoach-booking/internal/usecase/commands"
	"fitcoach-booking/internal/usecase/queries"
	"fitcoach-booking/internal/usecase/shared"
	"fitcoach-booking/tests/common/httptest"
	"fitcoach-booking/tests/common/testutil"
	commandsmock "fitcoach-booking/tests/mock/commands"
	queriesmock "fitcoach-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAvailabilityCommands
	mockQueries  *queriesmock.MockSlotQueries
	coach        shared.Actor
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAvailabilityCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSlotQueries(s.mockCtrl)
	handler := api.NewAvailabilityHandler(s.mockCommands, s.mockQueries)

	s.coach = shared.Actor{ID: uuid.New(), Role: user.RoleCoach}

	s.router.POST("/coaches/me/slots/preview", fakeAuth(s.coach), handler.Preview)
	s.router.POST("/coaches/me/slots", fakeAuth(s.coach), handler.Publish)
	s.router.DELETE("/coaches/me/slots/:id", fakeAuth(s.coach), handler.Delete)
	s.router.GET("/coaches/:coachID/slots", handler.List)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

type testCaseSlotPlan struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func validPlan() reqdto.SlotPlanRequest {
	return reqdto.SlotPlanRequest{Date: "2025-03-14", StartTime: "09:00", EndTime: "11:30", DurationMin: 60}
}

// ================================================================================
// TestPreview
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestPreview() {
	url := "/coaches/me/slots/preview"
	start := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	preview := &commands.PreviewSlotsResult{Slots: []schedule.TimeRange{
		{Start: start, End: start.Add(time.Hour)},
		{Start: start.Add(time.Hour), End: start.Add(2 * time.Hour)},
	}}

	s.Run("枠の一覧を返し保存はしない", func() {
		s.mockCommands.EXPECT().PreviewSlots(gomock.Any(), s.coach, commands.SlotPlanRequest{
			Date: "2025-03-14", StartTime: "09:00", EndTime: "11:30", DurationMin: 60,
		}).Return(preview, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validPlan(), "token")

		var body resdto.PreviewSlotsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Slots, 2)
		s.True(body.Slots[1].StartTime.Equal(start.Add(time.Hour)))
	})

	cases := []testCaseSlotPlan{
		{name: "所要時間の下限OK (5)", mutate: testutil.Field("durationMin", 5), expectCode: http.StatusOK},
		{name: "所要時間の上限OK (480)", mutate: testutil.Field("durationMin", 480), expectCode: http.StatusOK},
		{name: "所要時間が短すぎる (4)", mutate: testutil.Field("durationMin", 4), expectCode: http.StatusBadRequest},
		{name: "所要時間が長すぎる (481)", mutate: testutil.Field("durationMin", 481), expectCode: http.StatusBadRequest},
		{name: "日付の書式違反", mutate: testutil.Field("date", "14/03/2025"), expectCode: http.StatusBadRequest},
		{name: "時刻の書式違反", mutate: testutil.Field("startTime", "9am"), expectCode: http.StatusBadRequest},
		{name: "日付なし", mutate: testutil.Field("date", nil), expectCode: http.StatusBadRequest},
		{name: "終了時刻なし", mutate: testutil.Field("endTime", nil), expectCode: http.StatusBadRequest},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			if tc.expectCode == http.StatusOK {
				s.mockCommands.EXPECT().PreviewSlots(gomock.Any(), gomock.Any(), gomock.Any()).Return(preview, nil)
			}
			body := testutil.DtoMap(s.T(), validPlan(), tc.mutate)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")

			if tc.expectCode == http.StatusOK {
				httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
			} else {
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			}
		})
	}

	s.Run("枠が一つも作れない計画は400", func() {
		s.mockCommands.EXPECT().PreviewSlots(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, commands.ErrInvalidInput)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validPlan(), "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

// ================================================================================
// TestPublish
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestPublish() {
	url := "/coaches/me/slots"
	start := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	slot, err := availability.NewSlot(s.coach.ID, schedule.TimeRange{Start: start, End: start.Add(time.Hour)})
	s.Require().NoError(err)

	s.Run("作成数と重複でスキップした数を返す", func() {
		s.mockCommands.EXPECT().PublishSlots(gomock.Any(), s.coach, gomock.Any()).
			Return(&commands.PublishSlotsResult{Requested: 2, Created: []*availability.Slot{slot}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validPlan(), "token")

		var body resdto.PublishSlotsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(2, body.Requested)
		s.Equal(1, body.Created)
		s.Equal(1, body.Skipped)
		s.Require().Len(body.Slots, 1)
		s.Equal(slot.ID(), body.Slots[0].ID)
	})

	s.Run("管理者以外の他コーチ操作は403", func() {
		s.mockCommands.EXPECT().PublishSlots(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, commands.ErrForbidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validPlan(), "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

// ================================================================================
// TestDeleteAndList
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestDelete() {
	slotID := uuid.New()

	s.Run("削除は204", func() {
		s.mockCommands.EXPECT().DeleteSlot(gomock.Any(), s.coach, slotID).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/coaches/me/slots/"+slotID.String(), nil, "token")

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("既に予約された枠は404", func() {
		s.mockCommands.EXPECT().DeleteSlot(gomock.Any(), gomock.Any(), slotID).Return(commands.ErrSlotNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/coaches/me/slots/"+slotID.String(), nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

func (s *AvailabilityHandlerTestSuite) TestList() {
	coachID := uuid.New()
	from := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	s.Run("期間指定で空き枠を返す", func() {
		views := []*queries.SlotView{{ID: uuid.New(), CoachID: coachID, StartTime: from.Add(9 * time.Hour), EndTime: from.Add(10 * time.Hour)}}
		s.mockQueries.EXPECT().ListSlots(gomock.Any(), coachID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, w queries.TimeWindow) ([]*queries.SlotView, error) {
				s.True(w.From.Equal(from))
				s.True(w.To.Equal(to))
				return views, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/coaches/"+coachID.String()+"/slots?from=2025-03-14T00:00:00Z&to=2025-03-15T00:00:00Z", nil, "")

		var body []resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(coachID, body[0].CoachID)
	})

	s.Run("終了が開始より前なら400", func() {
		s.mockQueries.EXPECT().ListSlots(gomock.Any(), coachID, gomock.Any()).Return(nil, queries.ErrInvalidRange)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/coaches/"+coachID.String()+"/slots?from=2025-03-15T00:00:00Z&to=2025-03-14T00:00:00Z", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
