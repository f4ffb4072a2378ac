// SPDX-License-Identifier: MIT
package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/obskit/internal/fonts"
	"github.com/thatcatcamp/obskit/internal/settings"
	"github.com/thatcatcamp/obskit/internal/themes"
)

// Gradients lists the named gradients and mesh palettes.
func (h *Handlers) Gradients(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"gradients": themes.ListGradients(),
		"palettes":  themes.ListPalettes(),
		"default":   themes.DefaultGradient,
	})
}

type themeInfo struct {
	themes.Theme
	Accents themes.Accents `json:"accents"`
}

// Themes lists the themes with their accent sets.
func (h *Handlers) Themes(c *gin.Context) {
	var out []themeInfo
	for _, t := range themes.ListThemes() {
		out = append(out, themeInfo{Theme: t, Accents: themes.ThemeAccents(t.Name)})
	}
	c.JSON(http.StatusOK, gin.H{"themes": out})
}

// ListFonts lists the standard fonts and the Google Fonts catalog filtered by the
// category and q query params. A catalog failure still returns the standard
// fonts.
func (h *Handlers) ListFonts(c *gin.Context) {
	resp := gin.H{"standard": fonts.StandardOptions()}

	catalog, err := h.Deps.Fonts.List(c.Request.Context())
	if err != nil {
		resp["fonts"] = []fonts.Option{}
		resp["error"] = err.Error()
		c.JSON(http.StatusOK, resp)
		return
	}

	found := fonts.Search(catalog, c.Query("category"), c.Query("q"))
	opts := make([]fonts.Option, len(found))
	for i, f := range found {
		opts[i] = f.Option()
	}
	resp["fonts"] = opts
	resp["total"] = len(catalog)
	c.JSON(http.StatusOK, resp)
}

// ClearFontCache forces the next listing to refetch the catalog.
func (h *Handlers) ClearFontCache(c *gin.Context) {
	h.Deps.Fonts.ClearCache()
	c.Status(http.StatusNoContent)
}

// GetSettings returns the global brand settings.
func (h *Handlers) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.Settings.Current())
}

// UpdateSettings merges a partial update into the global settings.
func (h *Handlers) UpdateSettings(c *gin.Context) {
	var p settings.Partial
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}
	if err := p.Validate(); err != nil {
		var fe *settings.InvalidFieldError
		if errors.As(err, &fe) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "field": fe.Field})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.Settings.Update(p))
}

// ResetSettings restores the default settings.
func (h *Handlers) ResetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.Settings.Reset())
}

// ListCollapsible returns every stored section state.
func (h *Handlers) ListCollapsible(c *gin.Context) {
	sections, err := h.UI.Sections()
	if err != nil {
		log.Printf("[handlers] failed to list sections: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load sections"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sections": sections})
}

// GetCollapsible returns whether a section is open. The default query param
// is used when nothing is stored.
func (h *Handlers) GetCollapsible(c *gin.Context) {
	defaultOpen, err := strconv.ParseBool(c.DefaultQuery("default", "true"))
	if err != nil {
		defaultOpen = true
	}
	key := c.Param("key")
	c.JSON(http.StatusOK, gin.H{"key": key, "open": h.UI.Collapsible(key, defaultOpen)})
}

type collapsibleRequest struct {
	Open *bool `json:"open" binding:"required"`
}

// SetCollapsible stores whether a section is open.
func (h *Handlers) SetCollapsible(c *gin.Context) {
	var req collapsibleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "open is required"})
		return
	}
	key := c.Param("key")
	if err := h.UI.SetCollapsible(key, *req.Open); err != nil {
		log.Printf("[handlers] failed to save section %s: %v", key, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save section"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": key, "open": *req.Open})
}

// GetCredentials returns the remembered counter credentials.
func (h *Handlers) GetCredentials(c *gin.Context) {
	creds, err := h.Credentials.Load()
	if err != nil {
		log.Printf("[handlers] failed to load credentials: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load credentials"})
		return
	}
	c.JSON(http.StatusOK, creds)
}

// SaveCredentials stores counter credentials when remember is set and
// forgets them otherwise.
func (h *Handlers) SaveCredentials(c *gin.Context) {
	var creds settings.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}
	if err := h.Credentials.Save(creds); err != nil {
		log.Printf("[handlers] failed to save credentials: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save credentials"})
		return
	}
	if !creds.Remember {
		creds = settings.Credentials{}
	}
	c.JSON(http.StatusOK, creds)
}

// ClearCredentials forgets the counter credentials.
func (h *Handlers) ClearCredentials(c *gin.Context) {
	if err := h.Credentials.Clear(); err != nil {
		log.Printf("[handlers] failed to clear credentials: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear credentials"})
		return
	}
	c.Status(http.StatusNoContent)
}
