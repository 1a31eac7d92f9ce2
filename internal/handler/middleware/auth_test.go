//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"loyalty-engine/internal/domain/user"
	"loyalty-engine/internal/handler/middleware"
	"loyalty-engine/internal/pkg/cookie"
	"loyalty-engine/tests/common/builder"
	"loyalty-engine/tests/common/httptest"
	usecasemock "loyalty-engine/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockValidator *usecasemock.MockTokenValidator
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockValidator = usecasemock.NewMockTokenValidator(s.mockCtrl)
	auth := middleware.NewAuthMiddleware(s.mockValidator)

	echo := func(c *gin.Context) {
		actor, ok := middleware.GetActor(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": actor.ID.String(), "role": actor.Role.String()})
	}

	s.router.GET("/me", auth.RequireAuth(), echo)
	s.router.POST("/benefits", auth.RequireAuth(), auth.RequirePermission(user.PermManageBenefits), echo)
	s.router.GET("/client/points", auth.RequireAuth(), auth.RequirePermission(user.PermViewOwnAccount), echo)
	s.router.GET("/misconfigured", auth.RequirePermission(user.PermViewBenefits), echo)
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	actor := builder.Employee()

	s.Run("bearer header attaches the actor", func() {
		s.mockValidator.EXPECT().ValidateToken("good-token").Return(actor, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "good-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(actor.ID.String(), body["id"])
		s.Equal("EMPLOYEE", body["role"])
	})

	s.Run("cookie takes precedence over the header", func() {
		s.mockValidator.EXPECT().ValidateToken("cookie-token").Return(actor, nil).Times(1)

		cookies := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: "cookie-token"}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/me", nil, cookies, "header-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 401 without any token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 401 for a non-bearer scheme", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodGet, "/me", nil,
			map[string]string{"Authorization": "Basic dXNlcjpwYXNz"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 401 when validation fails", func() {
		s.mockValidator.EXPECT().ValidateToken("expired").Return(user.Actor{}, errors.New("token is expired")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "expired")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *AuthMiddlewareTestSuite) TestRequirePermission() {
	cases := []struct {
		name       string
		actor      user.Actor
		path       string
		method     string
		expectCode int
	}{
		{name: "admin manages benefits", actor: builder.Admin(), path: "/benefits", method: http.MethodPost, expectCode: http.StatusOK},
		{name: "manager manages benefits", actor: builder.Manager(), path: "/benefits", method: http.MethodPost, expectCode: http.StatusOK},
		{name: "employee cannot manage benefits", actor: builder.Employee(), path: "/benefits", method: http.MethodPost, expectCode: http.StatusForbidden},
		{name: "client cannot manage benefits", actor: builder.Client(), path: "/benefits", method: http.MethodPost, expectCode: http.StatusForbidden},
		{name: "client reads own account", actor: builder.Client(), path: "/client/points", method: http.MethodGet, expectCode: http.StatusOK},
		{name: "staff has no own account", actor: builder.Employee(), path: "/client/points", method: http.MethodGet, expectCode: http.StatusForbidden},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.mockValidator.EXPECT().ValidateToken("token").Return(tc.actor, nil).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, tc.method, tc.path, nil, "token")
			if tc.expectCode == http.StatusOK {
				httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
			} else {
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Insufficient permissions")
			}
		})
	}

	s.Run("error: 500 when RequireAuth did not run", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/misconfigured", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
