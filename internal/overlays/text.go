// SPDX-License-Identifier: MIT
package overlays

import "github.com/thatcatcamp/obskit/internal/params"

// TextParams configures the text banner overlay.
type TextParams struct {
	Preset        string  `query:"preset"`
	Text          string  `query:"text"`
	Sub           string  `query:"sub"`
	Size          float64 `query:"size" validate:"min=8,max=400"`
	SubSize       float64 `query:"subsize" validate:"min=6,max=200"`
	Weight        int     `query:"weight" validate:"min=100,max=900"`
	Font          string  `query:"font"`
	Align         string  `query:"align" validate:"oneof=left center right"`
	VAlign        string  `query:"valign" validate:"oneof=top center bottom"`
	Entrance      string  `query:"entrance" validate:"oneof=none fade slideUp slideDown slideLeft slideRight scale bounce"`
	EntranceSpeed float64 `query:"entrancespeed" validate:"gt=0,max=10"`
	Line          bool    `query:"line"`
	LineStyle     string  `query:"linestyle" validate:"oneof=solid dashed dotted gradient"`
	LineAnim      string  `query:"lineanim" validate:"oneof=none grow slide pulse"`
	LineColor     string  `query:"linecolor,color" validate:"omitempty,hexcolor"`
	TextGradient  bool    `query:"textgradient"`
	TextColor     string  `query:"textcolor,color" validate:"omitempty,hexcolor"`
	SubColor      string  `query:"subcolor,color" validate:"omitempty,hexcolor"`
	Bg            bool    `query:"bg"`
	Panel
	Brand
}

func (*TextParams) Kind() Kind { return KindText }

// DefaultText returns the text overlay defaults.
func DefaultText() TextParams {
	return TextParams{
		Preset:        presetCustom,
		Size:          28,
		SubSize:       16,
		Weight:        700,
		Font:          "display",
		Align:         "center",
		VAlign:        "center",
		Entrance:      "fade",
		EntranceSpeed: 1,
		Line:          true,
		LineStyle:     "gradient",
		LineAnim:      "grow",
		Panel:         defaultPanel(),
		Brand:         defaultBrand(),
	}
}

// TextPreset names a ready-made text overlay look.
type TextPreset string

const (
	TextBRB       TextPreset = "brb"
	TextChatting  TextPreset = "chatting"
	TextStarting  TextPreset = "starting"
	TextEnding    TextPreset = "ending"
	TextTechnical TextPreset = "technical"
	TextGaming    TextPreset = "gaming"
	TextPodcast   TextPreset = "podcast"
	TextCreative  TextPreset = "creative"
	TextCustom    TextPreset = presetCustom
)

var textPresetOrder = []TextPreset{
	TextBRB, TextChatting, TextStarting, TextEnding, TextTechnical,
	TextGaming, TextPodcast, TextCreative, TextCustom,
}

// ParseTextPreset maps unknown names to TextCustom.
func ParseTextPreset(s string) TextPreset {
	p := TextPreset(s)
	if _, ok := textPresets[p]; ok {
		return p
	}
	return TextCustom
}

var textPresets = map[TextPreset]params.Patch{
	TextBRB: {
		"text":           "Be Right Back",
		"sub":            "Stream will resume shortly",
		"size":           48,
		"subsize":        20,
		"weight":         700,
		"font":           "display",
		"align":          "center",
		"valign":         "center",
		"entrance":       "scale",
		"entrancespeed":  1,
		"line":           true,
		"linestyle":      "gradient",
		"lineanim":       "grow",
		"gradient":       "sunset",
		"gradienttype":   "linear",
		"textcolor":      "#fbbf24",
		"subcolor":       "#fdba74",
		"bg":             true,
		"bggradient":     true,
		"bggradientname": "fire",
		"colormode":      "darker",
	},
	TextChatting: {
		"text":          "Just Chatting",
		"sub":           "",
		"size":          36,
		"subsize":       18,
		"weight":        600,
		"font":          "display",
		"align":         "center",
		"valign":        "center",
		"entrance":      "fade",
		"entrancespeed": 0.8,
		"line":          true,
		"linestyle":     "gradient",
		"lineanim":      "slide",
		"gradient":      "indigo",
		"gradienttype":  "linear",
		"textgradient":  true,
		"bg":            false,
	},
	TextStarting: {
		"text":           "Starting Soon",
		"sub":            "Stream begins in a moment...",
		"size":           52,
		"subsize":        22,
		"weight":         700,
		"font":           "display",
		"align":          "center",
		"valign":         "center",
		"entrance":       "slideUp",
		"entrancespeed":  1,
		"line":           true,
		"linestyle":      "gradient",
		"lineanim":       "slide",
		"gradient":       "emerald",
		"gradienttype":   "linear",
		"textgradient":   true,
		"subcolor":       "#6ee7b7",
		"bg":             true,
		"bggradient":     true,
		"bggradientname": "palette:forest",
		"colormode":      "darker",
	},
	TextEnding: {
		"text":           "Thanks for Watching!",
		"sub":            "See you next time",
		"size":           44,
		"subsize":        20,
		"weight":         700,
		"font":           "display",
		"align":          "center",
		"valign":         "center",
		"entrance":       "fade",
		"entrancespeed":  1,
		"line":           true,
		"linestyle":      "gradient",
		"lineanim":       "pulse",
		"gradient":       "purple",
		"gradienttype":   "radial",
		"textgradient":   true,
		"subcolor":       "#c4b5fd",
		"bg":             true,
		"bggradient":     true,
		"bggradientname": "lavender",
		"colormode":      "darker",
	},
	TextTechnical: {
		"text":          "Technical Difficulties",
		"sub":           "Please stand by...",
		"size":          40,
		"subsize":       18,
		"weight":        600,
		"font":          "mono",
		"align":         "center",
		"valign":        "center",
		"entrance":      "fade",
		"entrancespeed": 0.6,
		"line":          true,
		"linestyle":     "dashed",
		"lineanim":      "none",
		"linecolor":     "#f59e0b",
		"gradient":      "mono",
		"textcolor":     "#f59e0b",
		"subcolor":      "#fbbf24",
		"bg":            true,
	},
	TextGaming: {
		"text":           "LIVE",
		"sub":            "",
		"size":           64,
		"weight":         900,
		"font":           "display",
		"align":          "center",
		"valign":         "center",
		"entrance":       "scale",
		"entrancespeed":  0.6,
		"line":           true,
		"linestyle":      "gradient",
		"lineanim":       "pulse",
		"gradient":       "neon",
		"gradienttype":   "linear",
		"textgradient":   true,
		"bg":             true,
		"bggradient":     true,
		"bggradientname": "palette:neon",
		"colormode":      "darker",
	},
	TextPodcast: {
		"text":          "Episode Title",
		"sub":           "Podcast Name",
		"size":          36,
		"subsize":       16,
		"weight":        500,
		"font":          "body",
		"align":         "left",
		"valign":        "bottom",
		"entrance":      "slideRight",
		"entrancespeed": 0.8,
		"line":          true,
		"linestyle":     "solid",
		"lineanim":      "grow",
		"linecolor":     "#94a3b8",
		"gradient":      "slate",
		"textcolor":     "#f1f5f9",
		"subcolor":      "#94a3b8",
		"bg":            true,
	},
	TextCreative: {
		"text":           "Creative Mode",
		"sub":            "",
		"size":           44,
		"weight":         700,
		"font":           "display",
		"align":          "center",
		"valign":         "center",
		"entrance":       "fade",
		"entrancespeed":  1.2,
		"line":           true,
		"linestyle":      "gradient",
		"lineanim":       "slide",
		"gradient":       "palette:aurora",
		"gradienttype":   "mesh",
		"textgradient":   true,
		"bg":             true,
		"bggradient":     true,
		"bggradientname": "palette:twilight",
		"colormode":      "darker",
	},
	TextCustom: {},
}
