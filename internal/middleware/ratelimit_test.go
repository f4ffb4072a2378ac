// SPDX-License-Identifier: MIT
package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimitAllowed(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(5, time.Minute)
	defer limiter.Stop()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/counter/value", nil)
	c.Request.RemoteAddr = "10.0.0.1:1234"

	middleware := RateLimitMiddleware(limiter, "/api/counter/")
	middleware(c)

	if w.Code == 429 {
		t.Error("Expected request to be allowed")
	}
	if w.Header().Get("X-RateLimit-Remaining") != "4" {
		t.Errorf("Expected 4 remaining, got %s", w.Header().Get("X-RateLimit-Remaining"))
	}
}

func TestRateLimitExceeded(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(2, time.Minute)
	defer limiter.Stop()

	clientIP := "10.0.0.1:1234"
	middleware := RateLimitMiddleware(limiter, "/api/counter/")

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/api/counter/value", nil)
		c.Request.RemoteAddr = clientIP

		middleware(c)

		if w.Code == 429 {
			t.Errorf("Request %d should be allowed", i+1)
		}
	}

	// Third request - should be rate limited
	w3 := httptest.NewRecorder()
	c3, _ := gin.CreateTestContext(w3)
	c3.Request = httptest.NewRequest("GET", "/api/counter/stream", nil)
	c3.Request.RemoteAddr = clientIP

	middleware(c3)

	if w3.Code != 429 {
		t.Errorf("Third request should be rate limited, got %d", w3.Code)
	}

	// Check headers
	if w3.Header().Get("X-RateLimit-Limit") != "2" {
		t.Errorf("Expected X-RateLimit-Limit: 2, got %s", w3.Header().Get("X-RateLimit-Limit"))
	}
	if w3.Header().Get("Retry-After") != "60" {
		t.Errorf("Expected Retry-After: 60, got %s", w3.Header().Get("Retry-After"))
	}

	// A different client has its own bucket
	w4 := httptest.NewRecorder()
	c4, _ := gin.CreateTestContext(w4)
	c4.Request = httptest.NewRequest("GET", "/api/counter/value", nil)
	c4.Request.RemoteAddr = "10.0.0.2:1234"

	middleware(c4)

	if w4.Code == 429 {
		t.Error("Other client should not be rate limited")
	}
}

func TestRateLimitDifferentPaths(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(1, time.Minute)
	defer limiter.Stop()

	middleware := RateLimitMiddleware(limiter, "/api/counter/")
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/overlays/counter", nil)
		c.Request.RemoteAddr = "10.0.0.1:1234"

		middleware(c)

		// Should not be rate limited (different path)
		if w.Code == 429 {
			t.Error("Different path should not be rate limited")
		}
	}
}

func TestRateLimitForwardedFor(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.RemoteAddr = "127.0.0.1:1234"
	c.Request.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

	if got := getClientIP(c); got != "203.0.113.7" {
		t.Errorf("Expected forwarded client, got %s", got)
	}
}
