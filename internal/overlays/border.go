// SPDX-License-Identifier: MIT
package overlays

import "github.com/thatcatcamp/obskit/internal/params"

// BorderParams configures the animated frame overlay.
type BorderParams struct {
	Preset     string  `query:"preset"`
	Style      string  `query:"style" validate:"oneof=solid dashed dotted double"`
	Animation  string  `query:"animation" validate:"oneof=none rotate pulse dash breathe glow"`
	Thickness  float64 `query:"thickness" validate:"min=1,max=50"`
	Radius     float64 `query:"r" validate:"min=0,max=50"`
	Shape      string  `query:"shape" validate:"oneof=rect circle"`
	Speed      float64 `query:"speed" validate:"min=0.1,max=10"`
	Glow       bool    `query:"glow"`
	GlowSize   float64 `query:"glowsize" validate:"min=0,max=100"`
	Opacity    float64 `query:"opacity" validate:"min=0,max=1"`
	MultiColor bool    `query:"multicolor"`
	ColorShift bool    `query:"colorshift"`
	ShiftSpeed float64 `query:"shiftspeed" validate:"gt=0,max=60"`
	Brand
}

func (*BorderParams) Kind() Kind { return KindBorder }

// DefaultBorder returns the border overlay defaults.
func DefaultBorder() BorderParams {
	return BorderParams{
		Preset:     presetCustom,
		Style:      "solid",
		Animation:  "rotate",
		Thickness:  4,
		Radius:     16,
		Shape:      "rect",
		Speed:      4,
		Glow:       true,
		GlowSize:   10,
		Opacity:    1,
		ShiftSpeed: 10,
		Brand:      defaultBrand(),
	}
}

// BorderPreset names a ready-made border look.
type BorderPreset string

const (
	BorderNeon    BorderPreset = "neon"
	BorderRainbow BorderPreset = "rainbow"
	BorderSubtle  BorderPreset = "subtle"
	BorderPulse   BorderPreset = "pulse"
	BorderCustom  BorderPreset = presetCustom
)

var borderPresetOrder = []BorderPreset{BorderNeon, BorderRainbow, BorderSubtle, BorderPulse, BorderCustom}

// ParseBorderPreset maps unknown names to BorderCustom.
func ParseBorderPreset(s string) BorderPreset {
	p := BorderPreset(s)
	if _, ok := borderPresets[p]; ok {
		return p
	}
	return BorderCustom
}

var borderPresets = map[BorderPreset]params.Patch{
	BorderNeon: {
		"style":        "solid",
		"animation":    "dash",
		"thickness":    3,
		"gradient":     "neon",
		"gradienttype": "linear",
		"glow":         true,
		"glowsize":     12,
		"opacity":      0.95,
		"speed":        3,
	},
	BorderRainbow: {
		"style":        "solid",
		"animation":    "dash",
		"thickness":    3,
		"gradient":     "rainbow",
		"gradienttype": "linear",
		"glow":         true,
		"glowsize":     8,
		"opacity":      0.9,
		"speed":        4,
		"multicolor":   true,
		"colorshift":   true,
		"shiftspeed":   8,
	},
	BorderSubtle: {
		"style":        "solid",
		"animation":    "none",
		"thickness":    1,
		"gradient":     "slate",
		"gradienttype": "linear",
		"glow":         true,
		"glowsize":     4,
		"opacity":      0.5,
		"speed":        6,
	},
	BorderPulse: {
		"style":        "solid",
		"animation":    "glow",
		"thickness":    2,
		"gradient":     "indigo",
		"gradienttype": "linear",
		"glow":         true,
		"glowsize":     10,
		"opacity":      0.85,
		"speed":        2,
	},
	BorderCustom: {},
}
