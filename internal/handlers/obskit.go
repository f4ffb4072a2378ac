// SPDX-License-Identifier: MIT
package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/microcosm-cc/bluemonday"
	"github.com/thatcatcamp/obskit/internal/fonts"
	"github.com/thatcatcamp/obskit/internal/middleware"
	"github.com/thatcatcamp/obskit/internal/overlays"
	"github.com/thatcatcamp/obskit/internal/poller"
	"github.com/thatcatcamp/obskit/internal/settings"
)

// Deps are the services the handlers work with.
type Deps struct {
	Settings    *settings.Manager
	UI          *settings.UIState
	Credentials *settings.CredentialStore
	Fonts       *fonts.Service
	Hub         *poller.Hub
	// HTTPClient is used for one-off counter fetches.
	HTTPClient *http.Client
	// PollTimeout bounds a one-off counter fetch.
	PollTimeout time.Duration
	// DefaultPollRate applies to counters whose query sets no pollrate.
	DefaultPollRate float64
	CustomFonts     []string
	// PollHosts limits the hosts custom counters may poll. Empty refuses
	// local and private addresses only.
	PollHosts []string
	// BaseURL prefixes generated overlay URLs.
	BaseURL string
}

// Handlers serves overlays and the configurator API.
type Handlers struct {
	Deps
	resolver overlays.Resolver
	text     *bluemonday.Policy
	upgrader websocket.Upgrader
}

// New returns handlers backed by d.
func New(d Deps) *Handlers {
	if d.HTTPClient == nil {
		d.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	}
	if d.PollTimeout <= 0 {
		d.PollTimeout = 10 * time.Second
	}
	return &Handlers{
		Deps:     d,
		resolver: overlays.Resolver{CustomFonts: d.CustomFonts},
		text:     bluemonday.StrictPolicy(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RouteOptions configures the middleware around the routes.
type RouteOptions struct {
	// Limiter rate limits the counter endpoints when set.
	Limiter *middleware.RateLimiter
	// Blocklist is rejected everywhere.
	Blocklist []string
	// APIAllowlist restricts the configurator API when non-empty.
	APIAllowlist []string
	// CSRF guards state-changing API requests.
	CSRF bool
}

// Routes registers every route on r.
func (h *Handlers) Routes(r *gin.Engine, opts RouteOptions) {
	r.Use(middleware.SecurityHeadersMiddleware())
	if len(opts.Blocklist) > 0 {
		r.Use(middleware.IPFilterMiddleware(opts.Blocklist, nil))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "obskit",
		})
	})

	r.GET("/overlays/:kind", h.OverlayPage)

	api := r.Group("/api")
	if len(opts.APIAllowlist) > 0 {
		api.Use(middleware.IPFilterMiddleware(nil, opts.APIAllowlist))
	}
	if opts.CSRF {
		api.Use(middleware.CSRFMiddleware(middleware.CSRFConfig{
			Secure: strings.HasPrefix(h.BaseURL, "https://"),
		}))
	}
	{
		api.GET("/csrf", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"token": middleware.GetCSRFToken(c)})
		})
		api.GET("/overlays", h.ListOverlays)
		api.GET("/overlays/:kind", h.ResolveOverlay)
		api.GET("/overlays/:kind/presets", h.OverlayPresets)
		api.GET("/overlays/:kind/url", h.OverlayURL)

		api.GET("/gradients", h.Gradients)
		api.GET("/themes", h.Themes)
		api.GET("/fonts", h.ListFonts)
		api.DELETE("/fonts/cache", h.ClearFontCache)

		api.GET("/settings", h.GetSettings)
		api.PATCH("/settings", h.UpdateSettings)
		api.DELETE("/settings", h.ResetSettings)

		api.GET("/ui/collapsible", h.ListCollapsible)
		api.GET("/ui/collapsible/:key", h.GetCollapsible)
		api.PUT("/ui/collapsible/:key", h.SetCollapsible)

		api.GET("/counter/credentials", h.GetCredentials)
		api.PUT("/counter/credentials", h.SaveCredentials)
		api.DELETE("/counter/credentials", h.ClearCredentials)

		counter := api.Group("/counter")
		if opts.Limiter != nil {
			counter.Use(middleware.RateLimitMiddleware(opts.Limiter, "/api/counter/value", "/api/counter/stream"))
		}
		counter.GET("/value", h.CounterValue)
		counter.GET("/stream", h.CounterStream)
	}
}
