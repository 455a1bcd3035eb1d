package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		id := w.Header().Get("X-Request-ID")
		assert.Len(t, id, 36)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
	})
}

func TestStructuredLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := &bytes.Buffer{}
	r := gin.New()
	r.Use(RequestID(), StructuredLogger(testLogger(buf)))
	r.GET("/venues", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/venues?x=1", nil)
	req.Header.Set("X-Request-ID", "req-1")
	r.ServeHTTP(httptest.NewRecorder(), req)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "HTTP Request", line["msg"])
	assert.Equal(t, "req-1", line["request_id"])
	assert.Equal(t, "/venues?x=1", line["path"])
	assert.EqualValues(t, http.StatusNoContent, line["status"])
}

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := &bytes.Buffer{}
	r := gin.New()
	r.Use(RequestID(), ErrorHandler(testLogger(buf)))
	r.GET("/fail", func(c *gin.Context) { _ = c.Error(errors.New("decode failure")) })
	r.GET("/written", func(c *gin.Context) {
		_ = c.Error(errors.New("logged only"))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store unavailable"})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body["error"])
	assert.Equal(t, w.Header().Get("X-Request-ID"), body["request_id"])
	assert.Contains(t, buf.String(), "decode failure")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/written", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, buf.String(), "logged only")
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewRateLimiter(LimiterConfig{RPS: 0.001, Burst: 2, IdleTTL: time.Minute})
	defer rl.Stop()

	r := gin.New()
	r.Use(rl.Middleware(func(c *gin.Context) string { return c.GetHeader("X-Client") }))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func(client string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Client", client)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, do("a"))
	assert.Equal(t, http.StatusOK, do("a"))
	assert.Equal(t, http.StatusTooManyRequests, do("a"))
	assert.Equal(t, http.StatusOK, do("b"), "buckets are per key")
}

func TestRateLimiterEvictsIdleKeys(t *testing.T) {
	rl := NewRateLimiter(LimiterConfig{RPS: 1, Burst: 1, IdleTTL: time.Minute})
	defer rl.Stop()

	rl.getLimiter("old")
	rl.evictIdle(time.Now().Add(2 * time.Minute))

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.Empty(t, rl.buckets)
}

func TestRateLimiterStop(t *testing.T) {
	rl := NewRateLimiter(LimiterConfig{RPS: 1, Burst: 1, IdleTTL: time.Minute})
	rl.Stop()
	rl.Stop()

	select {
	case <-rl.done:
	default:
		t.Fatal("sweep goroutine still running after Stop")
	}
}
