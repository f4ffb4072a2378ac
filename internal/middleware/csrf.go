package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	csrfCookieName = "obskit_csrf"
	csrfHeaderName = "X-CSRF-Token"
	csrfContextKey = "csrf_token"
	csrfTokenLen   = 32
)

// CSRFConfig configures CSRFMiddleware. The zero value issues an 8 hour
// cookie over plain http.
type CSRFConfig struct {
	MaxAge time.Duration
	// Secure marks the cookie https-only.
	Secure bool
}

// CSRFMiddleware guards state-changing configurator requests with a
// double-submit token. The token travels as a cookie and is echoed in the
// X-CSRF-Token response header so the configurator can send it back.
func CSRFMiddleware(cfg CSRFConfig) gin.HandlerFunc {
	maxAge := cfg.MaxAge
	if maxAge <= 0 {
		maxAge = 8 * time.Hour
	}

	return func(c *gin.Context) {
		token, err := c.Cookie(csrfCookieName)
		if err != nil || token == "" {
			token, err = generateCSRFToken()
			if err != nil {
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}

			c.SetSameSite(http.SameSiteStrictMode)
			c.SetCookie(csrfCookieName, token, int(maxAge.Seconds()), "/", "", cfg.Secure, false)
		}

		c.Set(csrfContextKey, token)
		c.Header(csrfHeaderName, token)

		if !safeMethod(c.Request.Method) {
			sent := c.GetHeader(csrfHeaderName)
			if subtle.ConstantTimeCompare([]byte(sent), []byte(token)) != 1 {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
					"error": "Invalid CSRF token",
				})
				return
			}
		}

		c.Next()
	}
}

func safeMethod(m string) bool {
	return m == http.MethodGet || m == http.MethodHead || m == http.MethodOptions
}

func generateCSRFToken() (string, error) {
	b := make([]byte, csrfTokenLen)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// GetCSRFToken returns the token CSRFMiddleware stored on c.
func GetCSRFToken(c *gin.Context) string {
	return c.GetString(csrfContextKey)
}
