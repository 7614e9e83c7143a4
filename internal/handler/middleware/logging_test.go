//go:build unit

package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"flashsale-scheduler/internal/handler/middleware"
	"flashsale-scheduler/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedRouter(t *testing.T, level string) (*gin.Engine, *bytes.Buffer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var out bytes.Buffer
	logger := middleware.NewLoggerTo(&out, config.LogConfig{Level: level, TimeZone: "UTC", TimeFormat: "15:04:05"})

	r := gin.New()
	r.Use(logger.LoggingMiddleware())
	r.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, middleware.GetRequestID(c)) })
	r.GET("/notifications/stream", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })
	return r, &out
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	router, _ := newLoggedRouter(t, "info")

	t.Run("client id is echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ok", http.NoBody)
		req.Header.Set("X-Request-ID", "req-42")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
		assert.Equal(t, "req-42", w.Body.String())
	})

	t.Run("missing id is generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", http.NoBody))

		_, err := uuid.Parse(w.Header().Get("X-Request-ID"))
		require.NoError(t, err)
		assert.Equal(t, w.Header().Get("X-Request-ID"), w.Body.String())
	})
}

func TestLoggingMiddleware_Levels(t *testing.T) {
	router, out := newLoggedRouter(t, "info")

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/notifications/stream", http.NoBody))
	assert.Empty(t, out.String(), "stream requests log at debug")

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", http.NoBody))
	assert.Contains(t, out.String(), "level=ERROR")
	assert.Contains(t, out.String(), "status_code=500")
}
