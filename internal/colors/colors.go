// SPDX-License-Identifier: MIT

// Package colors provides hex color parsing and the small amount of color math
// the overlays need: interpolation, WCAG luminance and contrast, lighten/darken
// and rgba output.
package colors

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
)

// Black is returned by InterpolateGradient when no stops are given.
const Black = "#000000"

// RGB is an 8-bit per channel color.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// HexToRGB parses a 3- or 6-digit hex color with or without a leading '#'.
// ok is false on malformed input.
func HexToRGB(hex string) (RGB, bool) {
	clean := strings.TrimPrefix(strings.TrimSpace(hex), "#")

	if len(clean) == 3 {
		clean = string([]byte{clean[0], clean[0], clean[1], clean[1], clean[2], clean[2]})
	}
	if len(clean) != 6 {
		return RGB{}, false
	}

	v, err := strconv.ParseUint(clean, 16, 32)
	if err != nil {
		return RGB{}, false
	}

	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, true
}

// RGBToHex formats channel values as #rrggbb, rounding and clamping each
// channel to [0,255].
func RGBToHex(r, g, b float64) string {
	return fmt.Sprintf("#%02x%02x%02x", clampChannel(r), clampChannel(g), clampChannel(b))
}

// Hex formats c as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func clampChannel(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(math.Round(clamp(v, 0, 255)))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Normalize adds the leading '#' to a bare hex string. Empty input stays empty.
func Normalize(color string) string {
	color = strings.TrimSpace(color)
	if color == "" || strings.HasPrefix(color, "#") {
		return color
	}
	return "#" + color
}

// Interpolate blends a toward b per channel. t is clamped to [0,1].
// Invalid input returns a unchanged.
func Interpolate(a, b string, t float64) string {
	c1, ok1 := HexToRGB(a)
	c2, ok2 := HexToRGB(b)
	if !ok1 || !ok2 {
		log.Printf("[colors] invalid color format for interpolation: %q, %q", a, b)
		return a
	}

	t = clamp(t, 0, 1)
	// Endpoints come back in the caller's own spelling.
	if t == 0 {
		return a
	}
	if t == 1 {
		return b
	}

	return RGBToHex(
		float64(c1.R)+(float64(c2.R)-float64(c1.R))*t,
		float64(c1.G)+(float64(c2.G)-float64(c1.G))*t,
		float64(c1.B)+(float64(c2.B)-float64(c1.B))*t,
	)
}

// InterpolateGradient returns the color at position t of a multi-stop
// gradient. [0,1] is split into len(stops)-1 equal segments.
func InterpolateGradient(stops []string, t float64) string {
	switch len(stops) {
	case 0:
		return Black
	case 1:
		return stops[0]
	}

	t = clamp(t, 0, 1)
	if t == 1 {
		return stops[len(stops)-1]
	}
	segment := 1 / float64(len(stops)-1)
	idx := int(math.Floor(t / segment))
	if idx > len(stops)-2 {
		idx = len(stops) - 2
	}
	local := (t - float64(idx)*segment) / segment

	return Interpolate(stops[idx], stops[idx+1], local)
}

// Luminance returns the WCAG relative luminance of a hex color in [0,1].
// Malformed colors report 0.
func Luminance(hex string) float64 {
	c, ok := HexToRGB(hex)
	if !ok {
		return 0
	}
	return c.Luminance()
}

// Luminance returns the WCAG relative luminance of c.
func (c RGB) Luminance() float64 {
	return 0.2126*linear(c.R) + 0.7152*linear(c.G) + 0.0722*linear(c.B)
}

func linear(v uint8) float64 {
	s := float64(v) / 255
	if s <= 0.03928 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// ContrastRatio returns the WCAG contrast ratio of two colors, in [1,21].
func ContrastRatio(a, b string) float64 {
	l1 := Luminance(a)
	l2 := Luminance(b)
	lighter := math.Max(l1, l2)
	darker := math.Min(l1, l2)
	return (lighter + 0.05) / (darker + 0.05)
}

// IsLight reports whether a color reads as light using the YIQ brightness
// formula. Malformed colors are treated as dark.
func IsLight(hex string) bool {
	c, ok := HexToRGB(hex)
	if !ok {
		return false
	}
	brightness := (float64(c.R)*299 + float64(c.G)*587 + float64(c.B)*114) / 1000
	return brightness > 155
}

// Lighten adds percent% of full scale to every channel.
func Lighten(hex string, percent float64) string {
	return shift(hex, 255*percent/100)
}

// Darken subtracts percent% of full scale from every channel.
func Darken(hex string, percent float64) string {
	return shift(hex, -255*percent/100)
}

func shift(hex string, amount float64) string {
	c, ok := HexToRGB(hex)
	if !ok {
		return hex
	}
	return RGBToHex(float64(c.R)+amount, float64(c.G)+amount, float64(c.B)+amount)
}

// WithOpacity renders a hex color as an rgba() string. Malformed input is
// returned unchanged.
func WithOpacity(hex string, alpha float64) string {
	c, ok := HexToRGB(hex)
	if !ok {
		return hex
	}
	a := strconv.FormatFloat(clamp(alpha, 0, 1), 'f', -1, 64)
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, a)
}
