package middleware_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hpvvs/salesops_backend/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(slog.Default()))
	r.Use(handlers...)
	return r
}

func TestStructuredLoggingAttachesLoggerAndRequestID(t *testing.T) {
	var seenID string
	var seenLogger *slog.Logger
	r := newEngine()
	r.GET("/ping", func(c *gin.Context) {
		seenID = middleware.GetRequestIDFromCtx(c.Request.Context())
		seenLogger = middleware.GetLoggerFromCtx(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.NotEmpty(t, seenID)
	assert.Equal(t, seenID, w.Header().Get(middleware.RequestIDHeader))
	assert.NotSame(t, slog.Default(), seenLogger)
}

func TestStructuredLoggingReusesIncomingRequestID(t *testing.T) {
	r := newEngine()
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get(middleware.RequestIDHeader))
}

func TestGetLoggerFromCtxFallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), middleware.GetLoggerFromCtx(context.Background()))
	assert.Empty(t, middleware.GetRequestIDFromCtx(context.Background()))
}

func TestRateLimitRejectsOverLimit(t *testing.T) {
	limiterInstance, err := middleware.NewRateLimiter("2-M")
	require.NoError(t, err)

	r := newEngine(middleware.RateLimit(limiterInstance))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
}

func TestNewRateLimiterRejectsBadFormat(t *testing.T) {
	_, err := middleware.NewRateLimiter("fast")
	assert.Error(t, err)
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	r := newEngine(middleware.CORS([]string{"https://ops.example.com"}))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://ops.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "https://ops.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
