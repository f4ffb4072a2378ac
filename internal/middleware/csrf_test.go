package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func csrfRouter(cfg CSRFConfig) *gin.Engine {
	r := gin.New()
	r.Use(CSRFMiddleware(cfg))
	r.GET("/api/settings", func(c *gin.Context) { c.String(200, GetCSRFToken(c)) })
	r.PATCH("/api/settings", func(c *gin.Context) { c.Status(204) })
	r.POST("/api/settings", func(c *gin.Context) { c.Status(204) })
	return r
}

func TestCSRFIssuesToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	csrfRouter(CSRFConfig{}).ServeHTTP(w, httptest.NewRequest("GET", "/api/settings", nil))

	if w.Code != 200 {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != csrfCookieName || cookies[0].Value != w.Body.String() {
		t.Fatalf("Expected token cookie matching context token, got %v", cookies)
	}
	if cookies[0].MaxAge != int((8 * time.Hour).Seconds()) {
		t.Errorf("Expected 8 hour cookie, got %d", cookies[0].MaxAge)
	}
	if cookies[0].Secure {
		t.Error("Cookie should not be secure by default")
	}
	if got := w.Header().Get(csrfHeaderName); got != w.Body.String() {
		t.Errorf("Expected token echoed in header, got %q", got)
	}
}

func TestCSRFSecureCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	csrfRouter(CSRFConfig{Secure: true, MaxAge: time.Hour}).ServeHTTP(w, httptest.NewRequest("GET", "/api/settings", nil))

	cookies := w.Result().Cookies()
	if len(cookies) != 1 || !cookies[0].Secure || cookies[0].MaxAge != 3600 {
		t.Errorf("Expected secure one hour cookie, got %v", cookies)
	}
}

func TestCSRFKeepsExistingToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	req := httptest.NewRequest("GET", "/api/settings", nil)
	req.AddCookie(&http.Cookie{Name: csrfCookieName, Value: "token"})
	w := httptest.NewRecorder()
	csrfRouter(CSRFConfig{}).ServeHTTP(w, req)

	if w.Body.String() != "token" {
		t.Errorf("Expected existing token, got %q", w.Body.String())
	}
	if len(w.Result().Cookies()) != 0 {
		t.Error("Should not reissue an existing token")
	}
}

func TestCSRFRejectsBadHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, header := range []string{"", "other"} {
		for _, method := range []string{"PATCH", "POST"} {
			req := httptest.NewRequest(method, "/api/settings", nil)
			req.AddCookie(&http.Cookie{Name: csrfCookieName, Value: "token"})
			if header != "" {
				req.Header.Set(csrfHeaderName, header)
			}

			w := httptest.NewRecorder()
			csrfRouter(CSRFConfig{}).ServeHTTP(w, req)

			if w.Code != 403 {
				t.Errorf("%s with header %q: expected 403, got %d", method, header, w.Code)
			}
		}
	}
}

func TestCSRFAcceptsMatchingHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)

	req := httptest.NewRequest("PATCH", "/api/settings", nil)
	req.AddCookie(&http.Cookie{Name: csrfCookieName, Value: "token"})
	req.Header.Set(csrfHeaderName, "token")

	w := httptest.NewRecorder()
	csrfRouter(CSRFConfig{}).ServeHTTP(w, req)

	if w.Code != 204 {
		t.Errorf("Expected 204 with matching token, got %d", w.Code)
	}
}
