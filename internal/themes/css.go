// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/thatcatcamp/obskit/internal/colors"
)

// Gradient types understood by Gradient.
const (
	GradientLinear = "linear"
	GradientRadial = "radial"
	GradientConic  = "conic"
	GradientMesh   = "mesh"
)

// meshPositions are the blob anchors of a mesh gradient. Colors beyond the
// eighth wrap around.
var meshPositions = []string{
	"25% 25%", "75% 25%", "50% 50%", "25% 75%", "75% 75%",
	"10% 50%", "90% 50%", "50% 10%",
}

func stopList(stops []string) string {
	if len(stops) == 1 {
		return stops[0] + " 0%, " + stops[0] + " 100%"
	}
	parts := make([]string, len(stops))
	for i, c := range stops {
		pos := float64(i) / float64(len(stops)-1) * 100
		parts[i] = c + " " + strconv.FormatFloat(pos, 'f', -1, 64) + "%"
	}
	return strings.Join(parts, ", ")
}

// LinearGradient renders stops as a CSS linear-gradient.
func LinearGradient(stops []string, angle float64) string {
	return fmt.Sprintf("linear-gradient(%sdeg, %s)", formatNumber(angle), stopList(stops))
}

// RadialGradient renders stops as a CSS radial-gradient from the center.
func RadialGradient(stops []string) string {
	return fmt.Sprintf("radial-gradient(circle, %s)", stopList(stops))
}

// ConicGradient renders stops as a CSS conic-gradient starting at angle.
func ConicGradient(stops []string, angle float64) string {
	return fmt.Sprintf("conic-gradient(from %sdeg, %s)", formatNumber(angle), stopList(stops))
}

// MeshGradient renders stops as stacked radial gradients, one soft blob per
// color.
func MeshGradient(stops []string) string {
	layers := make([]string, len(stops))
	for i, c := range stops {
		pos := meshPositions[i%len(meshPositions)]
		rgb, ok := colors.HexToRGB(c)
		if !ok {
			layers[i] = fmt.Sprintf("radial-gradient(ellipse at %s, %s 0%%, transparent 70%%)", pos, c)
			continue
		}
		layers[i] = fmt.Sprintf("radial-gradient(ellipse at %s, rgba(%d, %d, %d, 0.8) 0%%, transparent 60%%)",
			pos, rgb.R, rgb.G, rgb.B)
	}
	return strings.Join(layers, ", ")
}

// GradientCSS dispatches on the gradient type. Unknown types render linear.
func GradientCSS(stops []string, gradientType string, angle float64) string {
	if len(stops) == 0 {
		stops = LookupGradient(DefaultGradient)
	}
	switch gradientType {
	case GradientRadial:
		return RadialGradient(stops)
	case GradientConic:
		return ConicGradient(stops, angle)
	case GradientMesh:
		return MeshGradient(stops)
	default:
		return LinearGradient(stops, angle)
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Style is everything GenerateCSS needs to emit the variables of one overlay.
type Style struct {
	Theme        Theme
	Accents      Accents
	Stops        []string
	BgStops      []string
	GradientType string
	Angle        float64
	FontFamily   string
}

// GenerateCSS generates the root variables and base rules of an overlay page.
// The page background stays transparent so OBS composites it over the scene.
func GenerateCSS(s Style) string {
	stops := s.Stops
	if len(stops) == 0 {
		stops = LookupGradient(DefaultGradient)
	}
	bgStops := s.BgStops
	if len(bgStops) == 0 {
		bgStops = stops
	}
	font := s.FontFamily
	if font == "" {
		font = "'Inter', -apple-system, sans-serif"
	}

	return fmt.Sprintf(`:root {
  --color-bg: %s;
  --color-bg-alt: %s;
  --color-surface: %s;
  --color-border: %s;
  --color-text: %s;
  --color-text-muted: %s;
  --color-text-dim: %s;
  --accent-primary: %s;
  --accent-secondary: %s;
  --accent-tertiary: %s;
  --gradient-start: %s;
  --gradient-mid: %s;
  --gradient-end: %s;
  --gradient: %s;
  --gradient-bg: %s;
  --font-family: %s;
}

html, body {
  margin: 0;
  padding: 0;
  background: transparent;
  color: var(--color-text);
  font-family: var(--font-family);
  overflow: hidden;
}

.overlay-panel {
  background-color: %s;
  border: 1px solid var(--color-border);
  backdrop-filter: blur(12px);
}

.gradient-text {
  background: var(--gradient);
  -webkit-background-clip: text;
  background-clip: text;
  color: transparent;
}
`, s.Theme.Background, s.Theme.BackgroundAlt, s.Theme.Surface, s.Theme.Border,
		s.Theme.Text, s.Theme.TextMuted, s.Theme.TextDim,
		s.Accents.Primary, s.Accents.Secondary, s.Accents.Tertiary,
		stops[0], colors.InterpolateGradient(stops, 0.5), stops[len(stops)-1],
		GradientCSS(stops, s.GradientType, s.Angle),
		GradientCSS(bgStops, s.GradientType, s.Angle),
		font,
		colors.WithOpacity(s.Theme.Surface, 0.9))
}
