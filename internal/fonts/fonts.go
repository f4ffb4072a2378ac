// SPDX-License-Identifier: MIT

// Package fonts resolves overlay font names to CSS font-family values and
// lists the Google Fonts catalog for the configurator.
package fonts

import (
	"net/url"
	"strconv"
	"strings"
	"unicode"
)

// Standard font names always available to overlays.
const (
	Display = "display"
	Body    = "body"
	Mono    = "mono"
)

const (
	interFamily = "'Inter', sans-serif"
	monoFamily  = "'JetBrains Mono', monospace"
	customSlot  = "custom"
	css2URL     = "https://fonts.googleapis.com/css2"
)

// Option is one entry of a font picker.
type Option struct {
	Value      string `json:"value"`
	Label      string `json:"label"`
	FontFamily string `json:"fontFamily"`
}

// StandardOptions returns the fonts that need no download.
func StandardOptions() []Option {
	return []Option{
		{Value: Display, Label: "Display (Inter)", FontFamily: interFamily},
		{Value: Body, Label: "Body (Inter)", FontFamily: interFamily},
		{Value: Mono, Label: "Mono (JetBrains Mono)", FontFamily: monoFamily},
	}
}

// IsStandard reports whether name is one of the bundled fonts.
func IsStandard(name string) bool {
	return name == Display || name == Body || name == Mono
}

// Family returns the CSS font-family for an overlay font name. customN names
// pick the Nth entry of custom; an empty or unset slot falls back to the
// display font. Any other name is treated as a Google Fonts family.
func Family(name string, custom []string) string {
	if strings.TrimSpace(name) == Mono {
		return monoFamily
	}
	family := Name(name, custom)
	if family == "" {
		return interFamily
	}
	return quote(family) + ", sans-serif"
}

// Name returns the Google Fonts family an overlay font name refers to, or ""
// for the bundled fonts and empty custom slots.
func Name(name string, custom []string) string {
	name = strings.TrimSpace(name)
	if name == "" || IsStandard(name) {
		return ""
	}
	if n, ok := customIndex(name); ok {
		if n <= len(custom) {
			return clean(custom[n-1])
		}
		return ""
	}
	return clean(name)
}

func customIndex(name string) (int, bool) {
	if !strings.HasPrefix(name, customSlot) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(name, customSlot))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

func quote(family string) string {
	return "'" + clean(family) + "'"
}

// clean keeps the characters that occur in font family names. Anything else
// could escape the CSS string it is written into.
func clean(family string) string {
	var b strings.Builder
	for _, r := range family {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// CategoryFallback returns the generic CSS family for a Google Fonts category.
func CategoryFallback(category string) string {
	switch category {
	case "serif":
		return "serif"
	case "display", "handwriting":
		return "cursive"
	case "monospace":
		return "monospace"
	default:
		return "sans-serif"
	}
}

// CSSURL returns the stylesheet URL loading the given families. Standard
// fonts and blanks are skipped; the empty string means nothing to load.
func CSSURL(families ...string) string {
	var parts []string
	seen := make(map[string]bool)
	for _, f := range families {
		f = strings.TrimSpace(f)
		if _, ok := customIndex(f); ok || IsStandard(f) {
			continue
		}
		f = clean(f)
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		parts = append(parts, "family="+url.QueryEscape(f))
	}
	if len(parts) == 0 {
		return ""
	}
	return css2URL + "?" + strings.Join(parts, "&") + "&display=swap"
}
