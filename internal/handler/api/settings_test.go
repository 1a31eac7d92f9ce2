//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"loyalty-engine/internal/domain/user"
	"loyalty-engine/internal/handler/api"
	reqdto "loyalty-engine/internal/handler/dto/request"
	resdto "loyalty-engine/internal/handler/dto/response"
	"loyalty-engine/internal/pkg/errs"
	"loyalty-engine/internal/usecase/queries"
	"loyalty-engine/tests/common/builder"
	"loyalty-engine/tests/common/httptest"
	commandsmock "loyalty-engine/tests/mock/commands"
	queriesmock "loyalty-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SettingsHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockConversionCommands
	mockQueries  *queriesmock.MockConversionQueries
	handler      *api.SettingsHandler
	actor        user.Actor
}

func (s *SettingsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockConversionCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockConversionQueries(s.mockCtrl)
	s.handler = api.NewSettingsHandler(s.mockCommands, s.mockQueries)
	s.actor = builder.Manager()

	withActor := func(c *gin.Context) {
		c.Set("actor", s.actor)
		c.Next()
	}

	s.router.GET("/settings/conversion-rate", withActor, s.handler.GetConversionRate)
	s.router.PUT("/settings/conversion-rate", withActor, s.handler.UpdateConversionRate)
	s.router.GET("/settings/conversion-rate/history", withActor, s.handler.ConversionRateHistory)
}

func (s *SettingsHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSettingsHandlerSuite(t *testing.T) {
	suite.Run(t, new(SettingsHandlerTestSuite))
}

func (s *SettingsHandlerTestSuite) TestGetConversionRate() {
	s.Run("default rate has no audit fields", func() {
		s.mockQueries.EXPECT().Current(gomock.Any()).
			Return(&queries.ConversionRateView{Rate: decimal.NewFromInt(100)}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/settings/conversion-rate", nil, "")

		var response resdto.ConversionRateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.ConversionRate.Equal(decimal.NewFromInt(100)))
		s.NotEmpty(response.Description)
		s.Nil(response.UpdatedAt)
		s.Nil(response.UpdatedBy)
	})

	s.Run("updated rate carries who and when", func() {
		at := time.Now()
		by := "manager@example.com"
		s.mockQueries.EXPECT().Current(gomock.Any()).
			Return(&queries.ConversionRateView{Rate: decimal.NewFromInt(50), UpdatedAt: &at, UpdatedBy: &by}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/settings/conversion-rate", nil, "")

		var response resdto.ConversionRateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().NotNil(response.UpdatedAt)
		s.Equal(at.Unix(), *response.UpdatedAt)
		s.Equal(by, *response.UpdatedBy)
	})
}

func (s *SettingsHandlerTestSuite) TestUpdateConversionRate() {
	url := "/settings/conversion-rate"

	s.Run("success: returns the appended history entry", func() {
		old := decimal.NewFromInt(100)
		s.mockCommands.EXPECT().Update(gomock.Any(), decimal.RequireFromString("50"), s.actor).
			Return(&queries.ConversionRateEntryView{
				ID:        7,
				ChangedAt: time.Now(),
				ChangedBy: s.actor.Email,
				OldValue:  &old,
				NewValue:  decimal.NewFromInt(50),
			}, nil).Times(1)

		body := reqdto.UpdateConversionRateRequest{ConversionRate: decimal.RequireFromString("50")}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "")

		var response resdto.ConversionRateEntryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(7), response.ID)
		s.Require().NotNil(response.OldValue)
		s.True(response.OldValue.Equal(old))
		s.True(response.NewValue.Equal(decimal.NewFromInt(50)))
	})

	s.Run("error: 400 when the rate is rejected", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any(), s.actor).
			Return(nil, errs.Invalid("conversionRate", "must be greater than 0")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"conversionRate": "-1"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
	})

	s.Run("error: 400 when the rate is not a number", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"conversionRate": "fast"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *SettingsHandlerTestSuite) TestConversionRateHistory() {
	s.Run("first page with a cursor to the next", func() {
		first := decimal.NewFromInt(100)
		s.mockQueries.EXPECT().History(gomock.Any(), (*queries.Cursor)(nil), 2).Return([]*queries.ConversionRateEntryView{
			{ID: 2, ChangedAt: time.Now(), ChangedBy: "manager@example.com", OldValue: &first, NewValue: decimal.NewFromInt(80)},
			{ID: 1, ChangedAt: time.Now().Add(-time.Hour), ChangedBy: "admin@example.com", NewValue: first},
		}, &queries.Cursor{After: "page-2"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/settings/conversion-rate/history?limit=2", nil, "")

		var response resdto.ConversionRateHistoryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.History, 2)
		s.Equal(int64(2), response.History[0].ID)
		s.Nil(response.History[1].OldValue)
		s.Equal("page-2", response.NextCursor)
	})

	s.Run("cursor is forwarded", func() {
		s.mockQueries.EXPECT().History(gomock.Any(), &queries.Cursor{After: "page-2"}, 0).
			Return([]*queries.ConversionRateEntryView{}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/settings/conversion-rate/history?after=page-2", nil, "")

		var response resdto.ConversionRateHistoryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response.History)
		s.Empty(response.NextCursor)
	})
}
