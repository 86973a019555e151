package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(mw...)
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func serve(router *gin.Engine, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestMetricsMiddleware(t *testing.T) {
	router := newTestEngine(MetricsMiddleware())

	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/test", nil).Code)
	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/missing", nil).Code)
}

func TestRequestLoggingMiddleware(t *testing.T) {
	router := newTestEngine(RequestIDMiddleware(), RequestLoggingMiddleware())

	w := serve(router, http.MethodGet, "/test?x=1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestIDMiddleware(t *testing.T) {
	router := newTestEngine(RequestIDMiddleware())

	w := serve(router, http.MethodGet, "/test", nil)
	assert.Len(t, w.Header().Get("X-Request-ID"), 36)

	w = serve(router, http.MethodGet, "/test", http.Header{"X-Request-Id": {"abc-123"}})
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestRecoveryMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RecoveryMiddleware())
	router.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := serve(router, http.MethodGet, "/panic", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Internal server error"}`, w.Body.String())
}

func TestRateLimitMiddleware(t *testing.T) {
	router := newTestEngine(RateLimitMiddleware(1, 3))

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/test", nil).Code, "request %d", i)
	}

	w := serve(router, http.MethodGet, "/test", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Rate limit exceeded"}`, w.Body.String())
}

func TestRateLimitMiddleware_Disabled(t *testing.T) {
	router := newTestEngine(RateLimitMiddleware(0, 0))

	for i := 0; i < 10; i++ {
		assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/test", nil).Code)
	}
}

func TestRateLimiter_PerClient(t *testing.T) {
	rl := NewRateLimiter(1, 1, time.Minute)

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.2"))
	assert.Equal(t, 2, rl.Visitors())
}

func TestCorsMiddleware(t *testing.T) {
	router := newTestEngine(corsMiddleware())

	w := serve(router, http.MethodGet, "/test", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCorsMiddleware_OPTIONS(t *testing.T) {
	router := newTestEngine(corsMiddleware())

	w := serve(router, http.MethodOptions, "/test", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
