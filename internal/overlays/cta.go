// SPDX-License-Identifier: MIT
package overlays

import "github.com/thatcatcamp/obskit/internal/params"

// CTAParams configures the call-to-action overlay.
type CTAParams struct {
	Preset          string  `query:"preset"`
	Text            string  `query:"text"`
	Sub             string  `query:"sub"`
	Size            float64 `query:"size" validate:"min=8,max=400"`
	Icon            string  `query:"icon" validate:"oneof=none sub like follow share bell heart star custom"`
	IconAnim        string  `query:"iconanim" validate:"oneof=none bounce pulse shake spin wiggle heartbeat flip swirl"`
	IconPos         string  `query:"iconpos" validate:"oneof=left right top bottom"`
	IconColor       string  `query:"iconcolor,color" validate:"omitempty,hexcolor"`
	IconSize        float64 `query:"iconsize" validate:"min=0,max=400"`
	CustomIcon      string  `query:"customicon"`
	Font            string  `query:"font"`
	TextColor       string  `query:"textcolor,color" validate:"omitempty,hexcolor"`
	SubColor        string  `query:"subcolor,color" validate:"omitempty,hexcolor"`
	TextPadX        float64 `query:"textpadx" validate:"min=0"`
	TextPadY        float64 `query:"textpady" validate:"min=0"`
	LetterSpacing   float64 `query:"letterspacing"`
	LineHeight      float64 `query:"lineheight" validate:"gt=0,max=5"`
	Decoration      string  `query:"decoration" validate:"oneof=none line slant"`
	DecorationColor string  `query:"decorationcolor,color" validate:"omitempty,hexcolor"`
	Align           string  `query:"align" validate:"oneof=left center right"`
	VAlign          string  `query:"valign" validate:"oneof=top center bottom"`
	Bg              bool    `query:"bg"`
	Entrance        string  `query:"entrance" validate:"oneof=none fade slideUp slideDown slideLeft slideRight scale bounce"`
	Exit            string  `query:"exit" validate:"oneof=none fade slideUp slideDown slideLeft slideRight scale"`
	Delay           float64 `query:"delay" validate:"min=0"`
	EntranceSpeed   float64 `query:"entrancespeed" validate:"gt=0,max=10"`
	ExitSpeed       float64 `query:"exitspeed" validate:"gt=0,max=10"`
	Loop            bool    `query:"loop"`
	Hold            float64 `query:"hold" validate:"min=0"`
	Pause           float64 `query:"pause" validate:"min=0"`
	Panel
	Brand
}

func (*CTAParams) Kind() Kind { return KindCTA }

// DefaultCTA returns the call-to-action defaults.
func DefaultCTA() CTAParams {
	return CTAParams{
		Preset:        string(CTASubscribe),
		Text:          "Subscribe",
		Size:          28,
		Icon:          "sub",
		IconAnim:      "bounce",
		IconPos:       "left",
		Font:          "display",
		LineHeight:    1.2,
		Decoration:    "line",
		Align:         "center",
		VAlign:        "bottom",
		Bg:            true,
		Entrance:      "bounce",
		Exit:          "fade",
		Delay:         0.5,
		EntranceSpeed: 0.5,
		ExitSpeed:     0.4,
		Loop:          true,
		Hold:          6,
		Pause:         20,
		Panel:         defaultPanel(),
		Brand:         defaultBrand(),
	}
}

// CTAPreset names a ready-made call to action.
type CTAPreset string

const (
	CTASubscribe CTAPreset = "subscribe"
	CTALike      CTAPreset = "like"
	CTAFollow    CTAPreset = "follow"
	CTAShare     CTAPreset = "share"
	CTANotify    CTAPreset = "notify"
	CTADonate    CTAPreset = "donate"
	CTAMerch     CTAPreset = "merch"
	CTADiscord   CTAPreset = "discord"
	CTACustom    CTAPreset = presetCustom
)

var ctaPresetOrder = []CTAPreset{
	CTASubscribe, CTALike, CTAFollow, CTAShare, CTANotify, CTADonate, CTAMerch, CTADiscord, CTACustom,
}

// ParseCTAPreset maps unknown names to CTACustom.
func ParseCTAPreset(s string) CTAPreset {
	p := CTAPreset(s)
	if _, ok := ctaPresets[p]; ok {
		return p
	}
	return CTACustom
}

var ctaPresets = map[CTAPreset]params.Patch{
	CTASubscribe: {
		"text":            "Subscribe",
		"sub":             "Don't miss out!",
		"icon":            "sub",
		"iconanim":        "bounce",
		"iconcolor":       "#ef4444",
		"gradient":        "crimson",
		"decorationcolor": "#ef4444",
		"bg":              true,
		"bggradient":      true,
		"bggradientname":  "crimson",
		"colormode":       "darker",
	},
	CTALike: {
		"text":            "Like this stream",
		"sub":             "It helps a lot!",
		"icon":            "like",
		"iconanim":        "shake",
		"iconcolor":       "#f472b6",
		"gradient":        "sunset",
		"decorationcolor": "#f472b6",
		"bg":              true,
	},
	CTAFollow: {
		"text":            "Follow",
		"sub":             "Stay connected",
		"icon":            "follow",
		"iconanim":        "bounce",
		"iconcolor":       "#818cf8",
		"gradient":        "indigo",
		"decorationcolor": "#818cf8",
		"bg":              true,
		"bggradient":      true,
		"bggradientname":  "indigo",
		"colormode":       "darker",
	},
	CTAShare: {
		"text":            "Share with a friend",
		"sub":             "",
		"icon":            "share",
		"iconanim":        "spin",
		"iconcolor":       "#2dd4bf",
		"gradient":        "cyan",
		"decorationcolor": "#2dd4bf",
		"bg":              true,
	},
	CTANotify: {
		"text":            "Turn on notifications",
		"sub":             "Never miss a stream",
		"icon":            "bell",
		"iconanim":        "shake",
		"iconcolor":       "#fbbf24",
		"gradient":        "amber",
		"decorationcolor": "#fbbf24",
		"bg":              true,
	},
	CTADonate: {
		"text":            "Support the Stream",
		"sub":             "Every bit helps!",
		"icon":            "heart",
		"iconanim":        "bounce",
		"iconcolor":       "#34d399",
		"gradient":        "emerald",
		"decorationcolor": "#34d399",
		"bg":              true,
		"bggradient":      true,
		"bggradientname":  "emerald",
		"colormode":       "darker",
	},
	CTAMerch: {
		"text":            "Check out the merch!",
		"sub":             "Link in description",
		"icon":            "star",
		"iconanim":        "spin",
		"iconcolor":       "#f59e0b",
		"gradient":        "gold",
		"decorationcolor": "#f59e0b",
		"bg":              true,
		"bggradient":      true,
		"bggradientname":  "amber",
		"colormode":       "darker",
	},
	CTADiscord: {
		"text":            "Join the Discord",
		"sub":             "Be part of the community",
		"icon":            "follow",
		"iconanim":        "bounce",
		"iconcolor":       "#a78bfa",
		"gradient":        "purple",
		"decorationcolor": "#a78bfa",
		"bg":              true,
		"bggradient":      true,
		"bggradientname":  "lavender",
		"colormode":       "darker",
	},
	CTACustom: {},
}
