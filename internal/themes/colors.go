package themes

import (
	"strings"

	"github.com/thatcatcamp/obskit/internal/colors"
)

// Theme names.
const (
	Dark  = "dark"
	Light = "light"
)

// Color modes applied when deriving a background variant of a gradient.
const (
	ColorModeNormal = "normal"
	ColorModeDarker = "darker"
)

// darkerPercent is how far every stop is pulled down in the darker color mode.
const darkerPercent = 35

// Theme holds the semantic color roles of a theme.
type Theme struct {
	Name          string `json:"name"`
	Background    string `json:"bg"`
	BackgroundAlt string `json:"bgAlt"`
	Surface       string `json:"surface"`
	Border        string `json:"border"`
	Text          string `json:"text"`
	TextMuted     string `json:"textMuted"`
	TextDim       string `json:"textDim"`
}

// Accents is the contrast-aware accent set for a theme.
type Accents struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Tertiary  string `json:"tertiary"`
	Text      string `json:"text"`
}

var themes = map[string]Theme{
	Dark: {
		Name:          Dark,
		Background:    "#121216",
		BackgroundAlt: "#1c1c24",
		Surface:       "#26262e",
		Border:        "#3a3a44",
		Text:          "#f0f0f5",
		TextMuted:     "#9898a8",
		TextDim:       "#5a5a6a",
	},
	Light: {
		Name:          Light,
		Background:    "#f8f8fc",
		BackgroundAlt: "#eeeef4",
		Surface:       "#ffffff",
		Border:        "#d0d0da",
		Text:          "#121216",
		TextMuted:     "#5a5a6a",
		TextDim:       "#9898a8",
	},
}

// LookupTheme returns a theme by name. Unknown names fall back to dark.
func LookupTheme(name string) Theme {
	if t, ok := themes[strings.ToLower(strings.TrimSpace(name))]; ok {
		return t
	}
	return themes[Dark]
}

// ListThemes returns the built-in themes, dark first.
func ListThemes() []Theme {
	return []Theme{themes[Dark], themes[Light]}
}

// ThemeAccents returns accent colors that keep contrast on the given theme.
func ThemeAccents(name string) Accents {
	if LookupTheme(name).Name == Light {
		return Accents{Primary: "#4f46e5", Secondary: "#7c3aed", Tertiary: "#0891b2", Text: "#121216"}
	}
	return Accents{Primary: "#818cf8", Secondary: "#a78bfa", Tertiary: "#22d3ee", Text: "#f0f0f5"}
}

// BackgroundStops derives the background variant of a gradient for a color
// mode. Unknown modes behave like normal.
func BackgroundStops(stops []string, mode string) []string {
	out := make([]string, len(stops))
	for i, s := range stops {
		if mode == ColorModeDarker {
			out[i] = colors.Darken(s, darkerPercent)
		} else {
			out[i] = s
		}
	}
	return out
}
