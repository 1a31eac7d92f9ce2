//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"loyalty-engine/internal/domain/user"
	"loyalty-engine/internal/handler/api"
	resdto "loyalty-engine/internal/handler/dto/response"
	"loyalty-engine/internal/pkg/errs"
	"loyalty-engine/internal/usecase/queries"
	"loyalty-engine/tests/common/builder"
	"loyalty-engine/tests/common/httptest"
	queriesmock "loyalty-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ClientHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockClientQueries
	mockBenefit *queriesmock.MockBenefitQueries
	handler     *api.ClientHandler
	actor       user.Actor
}

func (s *ClientHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockClientQueries(s.mockCtrl)
	s.mockBenefit = queriesmock.NewMockBenefitQueries(s.mockCtrl)
	s.handler = api.NewClientHandler(s.mockQueries, s.mockBenefit)
	s.actor = builder.Client()

	withActor := func(c *gin.Context) {
		c.Set("actor", s.actor)
		c.Next()
	}

	s.router.GET("/client/points", withActor, s.handler.Points)
	s.router.GET("/client/profile", withActor, s.handler.Profile)
	s.router.GET("/client/points/history", withActor, s.handler.Transactions)
	s.router.GET("/client/transactions", withActor, s.handler.Transactions)
	s.router.GET("/client/orders", withActor, s.handler.Orders)
	s.router.GET("/client/benefits", withActor, s.handler.Benefits)
}

func (s *ClientHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestClientHandlerSuite(t *testing.T) {
	suite.Run(t, new(ClientHandlerTestSuite))
}

func (s *ClientHandlerTestSuite) TestPoints() {
	s.Run("success: reads the caller's own balance", func() {
		s.mockQueries.EXPECT().Points(gomock.Any(), s.actor.ID).Return(&queries.PointsView{
			ClientID:      s.actor.ID,
			CurrentPoints: decimal.RequireFromString("72.50"),
			TotalEarned:   decimal.RequireFromString("92.50"),
			TotalSpent:    decimal.NewFromInt(20),
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/client/points", nil, "")

		var response resdto.PointsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(s.actor.ID.String(), response.ClientID)
		s.True(response.CurrentPoints.Equal(decimal.RequireFromString("72.5")))
	})

	s.Run("error: 404 when the account row is missing", func() {
		s.mockQueries.EXPECT().Points(gomock.Any(), s.actor.ID).Return(nil, errs.ErrClientNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/client/points", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Client not found")
	})
}

func (s *ClientHandlerTestSuite) TestProfile() {
	s.Run("success: identity and balance of the caller", func() {
		s.mockQueries.EXPECT().Profile(gomock.Any(), s.actor.ID).Return(&queries.ProfileView{
			ClientID:      s.actor.ID,
			Username:      "alice",
			Email:         "alice@example.com",
			CurrentPoints: decimal.RequireFromString("12.34"),
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/client/profile", nil, "")

		var response resdto.ProfileResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(s.actor.ID.String(), response.ClientID)
		s.Equal("alice", response.Username)
		s.Equal("alice@example.com", response.Email)
		s.True(response.CurrentPoints.Equal(decimal.RequireFromString("12.34")))
	})

	s.Run("error: 404 when the client row is missing", func() {
		s.mockQueries.EXPECT().Profile(gomock.Any(), s.actor.ID).Return(nil, errs.ErrClientNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/client/profile", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Client not found")
	})
}

func (s *ClientHandlerTestSuite) TestTransactions() {
	s.Run("limit and cursor are forwarded and the next cursor returned", func() {
		orderID := uuid.New()
		s.mockQueries.EXPECT().Transactions(gomock.Any(), s.actor.ID, &queries.Cursor{After: "abc"}, 5).Return([]*queries.PointsTransactionView{
			{ID: uuid.New(), Kind: "EARNED", Amount: decimal.NewFromInt(8), OrderID: &orderID, BalanceAfter: decimal.NewFromInt(28), CreatedAt: time.Now()},
			{ID: uuid.New(), Kind: "SPENT", Amount: decimal.NewFromInt(20), OrderID: &orderID, BalanceAfter: decimal.NewFromInt(20), CreatedAt: time.Now()},
		}, &queries.Cursor{After: "next"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/client/transactions?limit=5&after=abc", nil, "")

		var response resdto.PointsTransactionPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Transactions, 2)
		s.Equal("EARNED", response.Transactions[0].Kind)
		s.Require().NotNil(response.Transactions[0].OrderID)
		s.Equal(orderID.String(), *response.Transactions[0].OrderID)
		s.Equal("next", response.NextCursor)
	})

	s.Run("malformed limit falls back to the default", func() {
		s.mockQueries.EXPECT().Transactions(gomock.Any(), s.actor.ID, (*queries.Cursor)(nil), 0).Return(nil, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/client/transactions?limit=ten", nil, "")

		var response resdto.PointsTransactionPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response.NextCursor)
	})

	s.Run("history path serves the same journal", func() {
		s.mockQueries.EXPECT().Transactions(gomock.Any(), s.actor.ID, (*queries.Cursor)(nil), 0).Return([]*queries.PointsTransactionView{
			{ID: uuid.New(), Kind: "EARNED", Amount: decimal.NewFromInt(1), BalanceAfter: decimal.NewFromInt(1), CreatedAt: time.Now()},
		}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/client/points/history", nil, "")

		var response resdto.PointsTransactionPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Transactions, 1)
	})

	s.Run("error: 400 on a malformed cursor", func() {
		s.mockQueries.EXPECT().Transactions(gomock.Any(), s.actor.ID, &queries.Cursor{After: "%%%"}, 0).
			Return(nil, nil, errs.Invalid("after", "malformed cursor")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/client/transactions?after=%25%25%25", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
	})
}

func (s *ClientHandlerTestSuite) TestOrders() {
	view := builder.NewOrderBuilder().BuildView()
	s.mockQueries.EXPECT().Orders(gomock.Any(), s.actor.ID, (*queries.Cursor)(nil), 0).Return([]*queries.OrderView{view}, nil, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/client/orders", nil, "")

	var response resdto.OrderPageResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Len(response.Orders, 1)
	s.Equal(view.ID.String(), response.Orders[0].ID)
	s.Empty(response.NextCursor)
}

func (s *ClientHandlerTestSuite) TestBenefits() {
	s.mockBenefit.EXPECT().AvailableForClient(gomock.Any(), s.actor.ID).Return(&queries.AvailableBenefitsView{
		Points:   decimal.NewFromInt(50),
		Day:      "MONDAY",
		Benefits: []*queries.BenefitView{builder.NewBenefitBuilder().BuildView()},
	}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/client/benefits", nil, "")

	var response resdto.AvailableBenefitsResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Len(response.Benefits, 1)
}
