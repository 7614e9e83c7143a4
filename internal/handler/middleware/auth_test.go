//go:build unit

package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"flashsale-scheduler/internal/handler/middleware"
	"flashsale-scheduler/internal/pkg/cookie"
	"flashsale-scheduler/internal/pkg/jwt"
	"flashsale-scheduler/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type whoAmI struct {
	UserName    string `json:"userName"`
	Marketplace bool   `json:"marketplace"`
}

type AuthMiddlewareTestSuite struct {
	suite.Suite
	jwt    *jwt.Service
	router *gin.Engine
}

func TestAuthMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.jwt = jwt.NewService("middleware-secret", time.Hour)

	s.router = gin.New()
	auth := middleware.NewAuthMiddleware(s.jwt, logger)
	s.router.GET("/me", auth.RequireAuth(), func(c *gin.Context) {
		name, _ := middleware.GetUserName(c)
		c.JSON(http.StatusOK, whoAmI{UserName: name, Marketplace: middleware.IsMarketplaceSession(c)})
	})
}

func (s *AuthMiddlewareTestSuite) token(name string, marketplace bool) string {
	token, err := s.jwt.GenerateToken(name, marketplace)
	s.Require().NoError(err)
	return token
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	s.Run("success: bearer token", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, s.token("ana", false))

		var got whoAmI
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		assert.Equal(s.T(), whoAmI{UserName: "ana"}, got)
	})

	s.Run("success: cookie wins over header", func() {
		cookies := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: s.token("MercadoLibre_Seller", true)}}
		w := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/me", nil, cookies, "garbage")

		var got whoAmI
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		assert.Equal(s.T(), whoAmI{UserName: "MercadoLibre_Seller", Marketplace: true}, got)
	})

	s.Run("error: missing token", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: token signed with another key", func() {
		foreign, err := jwt.NewService("other-secret", time.Hour).GenerateToken("ana", false)
		s.Require().NoError(err)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, foreign)

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")
	})
}
