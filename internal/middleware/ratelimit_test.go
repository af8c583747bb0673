package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newLimitedRouter(limiter *TokenBucket) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/submit", limiter.GinMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router
}

func postFrom(router *gin.Engine, ip string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/submit", nil)
	req.RemoteAddr = ip + ":12345"
	router.ServeHTTP(w, req)
	return w.Code
}

func TestTokenBucketAllowsWithinCapacity(t *testing.T) {
	router := newLimitedRouter(NewTokenBucket(3, 1))

	for i := 0; i < 3; i++ {
		if code := postFrom(router, "10.0.0.1"); code != http.StatusNoContent {
			t.Fatalf("request %d: status = %d, want %d", i+1, code, http.StatusNoContent)
		}
	}
	if code := postFrom(router, "10.0.0.1"); code != http.StatusTooManyRequests {
		t.Errorf("request over capacity: status = %d, want %d", code, http.StatusTooManyRequests)
	}
}

func TestTokenBucketIsolatesClients(t *testing.T) {
	router := newLimitedRouter(NewTokenBucket(1, 0.001))

	if code := postFrom(router, "10.0.0.1"); code != http.StatusNoContent {
		t.Fatalf("first client: status = %d, want %d", code, http.StatusNoContent)
	}
	if code := postFrom(router, "10.0.0.1"); code != http.StatusTooManyRequests {
		t.Fatalf("first client second request: status = %d, want %d", code, http.StatusTooManyRequests)
	}
	// A different IP has its own bucket
	if code := postFrom(router, "10.0.0.2"); code != http.StatusNoContent {
		t.Errorf("second client: status = %d, want %d", code, http.StatusNoContent)
	}
}

func TestNilLimiterPassesThrough(t *testing.T) {
	var limiter *TokenBucket
	router := newLimitedRouter(limiter)

	for i := 0; i < 5; i++ {
		if code := postFrom(router, "10.0.0.1"); code != http.StatusNoContent {
			t.Fatalf("request %d: status = %d, want %d", i+1, code, http.StatusNoContent)
		}
	}
}
