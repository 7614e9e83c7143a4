//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"flashsale-scheduler/internal/domain/schedule"
	"flashsale-scheduler/internal/handler/api"
	reqdto "flashsale-scheduler/internal/handler/dto/request"
	resdto "flashsale-scheduler/internal/handler/dto/response"
	"flashsale-scheduler/internal/handler/httperr"
	"flashsale-scheduler/internal/pkg/errs"
	"flashsale-scheduler/internal/usecase/queries"
	"flashsale-scheduler/tests/common/builder"
	"flashsale-scheduler/tests/common/httptest"
	"flashsale-scheduler/tests/common/testutil"
	commandsmock "flashsale-scheduler/tests/mock/commands"
	queriesmock "flashsale-scheduler/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ScheduleHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockScheduleCommands
	mockQueries  *queriesmock.MockDashboardQueries
	handler      *api.ScheduleHandler
}

func (s *ScheduleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockScheduleCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockDashboardQueries(s.mockCtrl)
	s.handler = api.NewScheduleHandler(s.mockCommands, s.mockQueries)

	s.router.Use(fakeAuth)
	s.router.GET("/schedules", s.handler.List)
	s.router.POST("/schedules", s.handler.Create)
	s.router.DELETE("/schedules/:id", s.handler.Delete)
}

func (s *ScheduleHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestScheduleHandlerSuite(t *testing.T) {
	suite.Run(t, new(ScheduleHandlerTestSuite))
}

type testCaseSchedule struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ScheduleHandlerTestSuite) TestCreate() {
	url := "/schedules"

	b := builder.NewScheduleBuilder().WithPercentage(25)
	reqBody := b.BuildDTO()
	created := b.Build()

	s.Run("success: returns 201 Created with the stored schedule", func() {
		s.mockCommands.EXPECT().
			CreateSchedule(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req reqdto.CreateScheduleRequest) (schedule.Schedule, error) {
				s.Equal("MLM-1001", req.ProductID)
				s.True(req.Value.Equal(decimal.NewFromInt(25)))
				return created, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.ScheduleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(created.ID().String(), body.ID)
		s.Equal("percentage", body.Type)
		s.InDelta(25.0, body.Value, 0.0001)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/schedules/" + created.ID().String()})
	})

	s.Run("success: numeric value is accepted", func() {
		s.mockCommands.EXPECT().CreateSchedule(gomock.Any(), gomock.Any()).Return(created, nil).Times(1)
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("value", 25))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on binding errors", func() {
		cases := []testCaseSchedule{
			{name: "missing field: productId", mutate: testutil.Field("productId", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: startTime", mutate: testutil.Field("startTime", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: endTime", mutate: testutil.Field("endTime", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: type", mutate: testutil.Field("type", nil), expectCode: http.StatusBadRequest},
			{name: "unknown type", mutate: testutil.Field("type", "bogo"), expectCode: http.StatusBadRequest},
			{name: "malformed time", mutate: testutil.Field("startTime", "tomorrow"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: binding failure lists the offending fields", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("productId", nil), testutil.Field("type", "bogo"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")

		var body struct {
			Detail []httperr.FieldError `json:"detail"`
		}
		s.Require().Equal(http.StatusBadRequest, rec.Code)
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.ElementsMatch([]httperr.FieldError{
			{Field: "ProductID", Rule: "required"},
			{Field: "Type", Rule: "oneof"},
		}, body.Detail)
	})

	s.Run("error: usecase errors are mapped to status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{
				name:       "inverted window",
				err:        errs.Mark(schedule.ErrInvalidWindow, errs.ErrDomainValidation),
				expectCode: http.StatusBadRequest,
				expectMsg:  "End time",
			},
			{
				name:       "percentage over 100",
				err:        errs.Mark(schedule.ErrPercentageOutOfRange, errs.ErrDomainValidation),
				expectCode: http.StatusBadRequest,
				expectMsg:  "Percentage",
			},
			{
				name:       "unknown product",
				err:        errs.Wrap(errs.ErrProductNotFound, "create schedule"),
				expectCode: http.StatusNotFound,
				expectMsg:  "Product not found",
			},
			{
				name:       "store failure",
				err:        errs.Mark(errors.New("connection reset"), errs.ErrStoreOperationFailed),
				expectCode: http.StatusInternalServerError,
				expectMsg:  "Create schedule failed",
			},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateSchedule(gomock.Any(), gomock.Any()).
					Return(schedule.Schedule{}, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *ScheduleHandlerTestSuite) TestDelete() {
	id := uuid.New()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().DeleteSchedule(gomock.Any(), id).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/schedules/"+id.String(), nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found for unknown schedule", func() {
		s.mockCommands.EXPECT().DeleteSchedule(gomock.Any(), id).Return(errs.ErrScheduleNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/schedules/"+id.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Schedule not found")
	})

	s.Run("error: 400 Bad Request for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/schedules/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *ScheduleHandlerTestSuite) TestList() {
	s.Run("success: dangling schedules keep their placeholder title", func() {
		views := []queries.ScheduleView{
			{
				ID:           uuid.New(),
				ProductID:    "MLM-9999",
				ProductTitle: queries.UnknownProductTitle,
				StartTime:    builder.BaseTime,
				EndTime:      builder.BaseTime.Add(2 * time.Hour),
				Type:         "fixed",
				Value:        decimal.RequireFromString("499.50"),
				Status:       "active",
				IsActive:     true,
			},
		}
		s.mockQueries.EXPECT().ListSchedules(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/schedules", nil, "bearer-token")

		var body []resdto.ScheduleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(queries.UnknownProductTitle, body[0].ProductTitle)
		s.InDelta(499.5, body[0].Value, 0.0001)
		s.True(body[0].IsActive)
	})
}
