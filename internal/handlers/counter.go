// SPDX-License-Identifier: MIT
package handlers

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/obskit/internal/overlays"
	"github.com/thatcatcamp/obskit/internal/poller"
)

// counterParams resolves the counter query, applying the configured default
// poll rate when the query has none.
func (h *Handlers) counterParams(c *gin.Context) (*overlays.CounterParams, bool) {
	q := c.Request.URL.Query()
	if _, ok := q["pollrate"]; !ok && h.DefaultPollRate > 0 {
		q = cloneValues(q)
		q.Set("pollrate", strconv.FormatFloat(h.DefaultPollRate, 'f', -1, 64))
	}
	res, err := h.resolver.Resolve(overlays.KindCounter, h.Settings.Current(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, false
	}
	return res.Params.(*overlays.CounterParams), true
}

func cloneValues(q url.Values) url.Values {
	out := make(url.Values, len(q)+1)
	for k, v := range q {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// pollConfig builds the poll config for p and checks the server may fetch it.
// It writes a 400 itself when not.
func (h *Handlers) pollConfig(c *gin.Context, p *overlays.CounterParams) (poller.Config, bool) {
	cfg := poller.ConfigFor(p)
	if err := cfg.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return cfg, false
	}
	if err := cfg.CheckHost(h.PollHosts); err != nil {
		log.Printf("[handlers] refused counter poll: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return cfg, false
	}
	return cfg, true
}

// CounterValue fetches the counter value once. Manual counters answer with
// their configured value.
func (h *Handlers) CounterValue(c *gin.Context) {
	p, ok := h.counterParams(c)
	if !ok {
		return
	}
	format := p.NumberFormat()

	if !p.Polls() {
		c.JSON(http.StatusOK, gin.H{
			"value":     p.Value,
			"formatted": overlays.FormatCount(p.Value, format),
			"service":   p.Service,
		})
		return
	}

	cfg, ok := h.pollConfig(c, p)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.PollTimeout)
	defer cancel()
	v, err := poller.Fetch(ctx, h.HTTPClient, cfg)
	if err != nil {
		log.Printf("[handlers] counter fetch failed for %s: %v", p.Service, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "service": p.Service})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"value":     v,
		"formatted": overlays.FormatCount(v, format),
		"service":   p.Service,
	})
}

// CounterStream upgrades to a websocket and pushes poll states for the
// counter described by the query.
func (h *Handlers) CounterStream(c *gin.Context) {
	p, ok := h.counterParams(c)
	if !ok {
		return
	}
	if !p.Polls() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "counter does not poll an API"})
		return
	}
	cfg, ok := h.pollConfig(c, p)
	if !ok {
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[handlers] websocket upgrade failed: %v", err)
		return
	}
	h.Hub.Serve(conn, cfg)
}
