// SPDX-License-Identifier: MIT
package handlers

import (
	"errors"
	"fmt"
	"html"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/thatcatcamp/obskit/internal/fonts"
	"github.com/thatcatcamp/obskit/internal/overlays"
	"github.com/thatcatcamp/obskit/internal/params"
)

// resolve runs the parameter chain for the :kind route param. It writes the
// error response itself and returns nil when the kind is unknown.
func (h *Handlers) resolve(c *gin.Context, q url.Values) *overlays.Resolved {
	kind, err := overlays.ParseKind(c.Param("kind"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return nil
	}
	res, err := h.resolver.Resolve(kind, h.Settings.Current(), q)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, overlays.ErrUnknownKind) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return nil
	}
	return res
}

// ResolveOverlay returns the resolved parameters and style as JSON.
func (h *Handlers) ResolveOverlay(c *gin.Context) {
	res := h.resolve(c, c.Request.URL.Query())
	if res == nil {
		return
	}
	c.JSON(http.StatusOK, res)
}

// OverlayPage serves the HTML shell an OBS browser source loads.
func (h *Handlers) OverlayPage(c *gin.Context) {
	res := h.resolve(c, c.Request.URL.Query())
	if res == nil {
		return
	}

	values := make(params.Patch, len(res.Values))
	for k, v := range res.Values {
		if s, ok := v.(string); ok {
			v = h.plain(s)
		}
		values[k] = v
	}
	payload, err := json.Marshal(gin.H{
		"kind":        res.Kind,
		"preset":      res.Preset,
		"params":      values,
		"stops":       res.Stops,
		"bgStops":     res.BgStops,
		"gradientCss": res.GradientCSS,
		"accents":     res.Accents,
		"fontFamily":  res.FontFamily,
	})
	if err != nil {
		log.Printf("[handlers] failed to encode %s overlay: %v", res.Kind, err)
		c.String(http.StatusInternalServerError, "Failed to render overlay")
		return
	}

	var fontLink string
	if font, ok := res.Values["font"].(string); ok {
		if href := fonts.CSSURL(fonts.Name(font, h.CustomFonts)); href != "" {
			fontLink = fmt.Sprintf(`<link rel="stylesheet" href="%s">`, html.EscapeString(href))
		}
	}

	page := fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="utf-8">
	<title>%s overlay</title>
	%s
	<style>
%s
	</style>
</head>
<body>
	<div id="overlay" class="overlay overlay-%s"></div>
	<script id="overlay-data" type="application/json">%s</script>
</body>
</html>
`, res.Kind, fontLink, strings.ReplaceAll(res.CSS, "</", `<\/`), res.Kind, payload)

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

// plain strips markup from user text while keeping the text itself.
func (h *Handlers) plain(s string) string {
	return html.UnescapeString(h.text.Sanitize(s))
}

type overlayInfo struct {
	Kind    overlays.Kind `json:"kind"`
	Path    string        `json:"path"`
	Presets []string      `json:"presets"`
	Keys    []string      `json:"keys"`
}

// ListOverlays lists every overlay kind.
func (h *Handlers) ListOverlays(c *gin.Context) {
	out := make([]overlayInfo, 0, len(overlays.Kinds))
	for _, k := range overlays.Kinds {
		def, _ := overlays.Default(k)
		out = append(out, overlayInfo{
			Kind:    k,
			Path:    k.Path(),
			Presets: overlays.PresetNames(k),
			Keys:    params.Keys(def),
		})
	}
	c.JSON(http.StatusOK, gin.H{"overlays": out})
}

// OverlayPresets returns the presets of a kind with their card metadata and
// parameter patches.
func (h *Handlers) OverlayPresets(c *gin.Context) {
	kind, err := overlays.ParseKind(c.Param("kind"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	patches := make(map[string]params.Patch)
	for _, name := range overlays.PresetNames(kind) {
		patches[name] = overlays.Presets(kind, name)
	}
	c.JSON(http.StatusOK, gin.H{
		"kind":    kind,
		"cards":   overlays.Cards(kind),
		"presets": patches,
	})
}

// OverlayURL returns the share and full URLs for the resolved query. The
// share URL leaves out secrets such as API keys.
func (h *Handlers) OverlayURL(c *gin.Context) {
	res := h.resolve(c, c.Request.URL.Query())
	if res == nil {
		return
	}
	defaults, _ := overlays.Default(res.Kind)
	share, full := params.URLs(h.BaseURL, res.Kind.Path(), res.Params, defaults)
	c.JSON(http.StatusOK, gin.H{
		"share": share,
		"full":  full,
	})
}
