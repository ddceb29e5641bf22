package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}

func newTestRouter(cfg RateLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := New(&mockLogger{}, cfg)

	r := gin.New()
	r.GET("/ping", mw.RateLimit(), func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func TestRateLimit(t *testing.T) {
	t.Run("within budget", func(t *testing.T) {
		r := newTestRouter(RateLimitConfig{RequestsPerMin: 600})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
	})

	t.Run("burst exhausted", func(t *testing.T) {
		// 10 req/min yields a burst of 1: the second immediate request
		// must be rejected.
		r := newTestRouter(RateLimitConfig{RequestsPerMin: 10})

		for i, want := range []int{http.StatusOK, http.StatusTooManyRequests} {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.RemoteAddr = "10.0.0.2:1234"
			r.ServeHTTP(w, req)
			if w.Code != want {
				t.Fatalf("request %d: status = %d, want %d", i+1, w.Code, want)
			}
		}
	})

	t.Run("clients throttled independently", func(t *testing.T) {
		r := newTestRouter(RateLimitConfig{RequestsPerMin: 10})

		first := httptest.NewRecorder()
		reqA := httptest.NewRequest(http.MethodGet, "/ping", nil)
		reqA.RemoteAddr = "10.0.0.3:1234"
		r.ServeHTTP(first, reqA)

		second := httptest.NewRecorder()
		reqB := httptest.NewRequest(http.MethodGet, "/ping", nil)
		reqB.RemoteAddr = "10.0.0.4:1234"
		r.ServeHTTP(second, reqB)

		if second.Code != http.StatusOK {
			t.Fatalf("second client throttled: status = %d", second.Code)
		}
	})
}
