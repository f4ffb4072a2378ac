package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// overlayCSP lets overlay pages load Google Fonts and open the counter
// websocket. Overlays are rendered by OBS, never framed by other sites.
var overlayCSP = strings.Join([]string{
	"default-src 'self'",
	"script-src 'self' 'unsafe-inline'",
	"style-src 'self' 'unsafe-inline' https://fonts.googleapis.com",
	"img-src 'self' data: https:",
	"font-src 'self' data: https://fonts.gstatic.com",
	"connect-src 'self' ws: wss:",
	"frame-ancestors 'self'",
}, "; ")

// SecurityHeadersMiddleware adds security headers to all responses
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Prevent MIME type sniffing
		c.Header("X-Content-Type-Options", "nosniff")

		// Configurator previews frame overlays from the same origin
		c.Header("X-Frame-Options", "SAMEORIGIN")

		c.Header("Referrer-Policy", "no-referrer")

		// Share URLs may carry API keys in the query
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.Header("Cache-Control", "no-store")
		}

		c.Header("Content-Security-Policy", overlayCSP)

		c.Next()
	}
}
