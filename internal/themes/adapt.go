package themes

import (
	"strings"

	"github.com/thatcatcamp/obskit/internal/colors"
)

// ContrastKeys are the parameter names holding text or element colors that
// must stay readable against the theme background.
var ContrastKeys = []string{
	"textcolor",
	"subcolor",
	"linecolor",
	"labelcolor",
	"handlecolor",
	"iconcolor",
	"numbercolor",
	"decorationcolor",
}

// Adapter flips colors that would disappear into the theme background.
// Colors on a light theme must stay at or below LightMax luminance, colors
// on a dark theme at or above DarkMin.
type Adapter struct {
	LightMax float64
	DarkMin  float64
	// Blend is how far toward the full inverse a flipped color moves.
	Blend float64
	// Step is the lighten/darken percentage used when the blend alone does
	// not clear the threshold.
	Step float64
}

// DefaultAdapter carries the thresholds used by AdaptColors.
var DefaultAdapter = Adapter{
	LightMax: 0.6,
	DarkMin:  0.3,
	Blend:    0.7,
	Step:     5,
}

// AdaptColors adapts the contrast-sensitive entries of colors for theme using
// DefaultAdapter. The input map is not modified.
func AdaptColors(in map[string]string, theme string) map[string]string {
	return DefaultAdapter.Adapt(in, theme)
}

// Adapt returns a copy of in with every contrast-sensitive color that fails
// the theme threshold inverted. Empty, short and non-hex values are kept as
// they are.
func (a Adapter) Adapt(in map[string]string, theme string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}

	light := LookupTheme(theme).Name == Light
	for _, key := range ContrastKeys {
		v, ok := out[key]
		if !ok || len(strings.TrimPrefix(v, "#")) < 6 {
			continue
		}
		if _, valid := colors.HexToRGB(v); !valid {
			continue
		}
		out[key] = a.AdaptColor(v, light)
	}
	return out
}

// AdaptColor returns hex unchanged when it already satisfies the threshold
// for the theme, otherwise an inverted variant that does.
func (a Adapter) AdaptColor(hex string, light bool) string {
	if a.satisfies(hex, light) {
		return hex
	}

	adapted := a.invert(hex)
	for i := 0; !a.satisfies(adapted, light) && i < 100; i++ {
		if light {
			adapted = colors.Darken(adapted, a.Step)
		} else {
			adapted = colors.Lighten(adapted, a.Step)
		}
	}
	return adapted
}

func (a Adapter) satisfies(hex string, light bool) bool {
	l := colors.Luminance(hex)
	if light {
		return l <= a.LightMax
	}
	return l >= a.DarkMin
}

// invert blends each channel toward its inverse, keeping some of the
// original hue.
func (a Adapter) invert(hex string) string {
	c, ok := colors.HexToRGB(hex)
	if !ok {
		return hex
	}
	blend := func(v uint8) float64 {
		f := float64(v)
		return f + (255-f-f)*a.Blend
	}
	return colors.RGBToHex(blend(c.R), blend(c.G), blend(c.B))
}

// HasColorOverrides reports whether any contrast-sensitive key carries an
// explicit color.
func HasColorOverrides(in map[string]string) bool {
	for _, key := range ContrastKeys {
		if len(in[key]) >= 6 {
			return true
		}
	}
	return false
}
