//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"flashsale-scheduler/internal/handler/dto/request"
	"flashsale-scheduler/internal/pkg/cookie"
	"flashsale-scheduler/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	sessionCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, sessionCookie, "Session cookie not found")
	require.NotEmpty(t, sessionCookie.Value, "Session cookie is empty")

	return sessionCookie.Value
}

func ConnectMarketplace(t *testing.T, router *gin.Engine, code string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/marketplace/callback",
		request.MarketplaceCallbackRequest{Code: code}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	sessionCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, sessionCookie, "Session cookie not found")
	return sessionCookie.Value
}
