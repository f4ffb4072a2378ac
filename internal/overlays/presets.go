// SPDX-License-Identifier: MIT
package overlays

import "github.com/thatcatcamp/obskit/internal/params"

// Presets returns the partial parameters of a named preset. Unknown names
// and "custom" yield an empty patch. The result is a copy.
func Presets(kind Kind, name string) params.Patch {
	switch kind {
	case KindText:
		return textPresets[ParseTextPreset(name)].Clone()
	case KindBorder:
		return borderPresets[ParseBorderPreset(name)].Clone()
	case KindCounter:
		return counterPresets[ParseCounterPreset(name)].Clone()
	case KindCTA:
		return ctaPresets[ParseCTAPreset(name)].Clone()
	case KindSocials:
		return socialsPresets[ParseSocialsPreset(name)].Clone()
	}
	return params.Patch{}
}

// ParsePreset normalizes a preset name for kind. Kinds without presets
// always report "custom".
func ParsePreset(kind Kind, name string) string {
	switch kind {
	case KindText:
		return string(ParseTextPreset(name))
	case KindBorder:
		return string(ParseBorderPreset(name))
	case KindCounter:
		return string(ParseCounterPreset(name))
	case KindCTA:
		return string(ParseCTAPreset(name))
	case KindSocials:
		return string(ParseSocialsPreset(name))
	}
	return presetCustom
}

// PresetNames lists the presets of kind in display order.
func PresetNames(kind Kind) []string {
	switch kind {
	case KindText:
		return names(textPresetOrder)
	case KindBorder:
		return names(borderPresetOrder)
	case KindCounter:
		return names(counterPresetOrder)
	case KindCTA:
		return names(ctaPresetOrder)
	case KindSocials:
		return names(socialsPresetOrder)
	}
	return nil
}

func names[T ~string](in []T) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}

// PresetCard is the configurator's display metadata for one preset.
type PresetCard struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Gradient    string `json:"gradient,omitempty"`
	ColorMode   string `json:"colormode,omitempty"`
}

var cards = map[Kind][]PresetCard{
	KindText: {
		{Value: "brb", Label: "Be Right Back", Description: "Warm sunset tones with gradient panel", Gradient: "sunset"},
		{Value: "chatting", Label: "Just Chatting", Description: "Clean indigo gradient text", Gradient: "indigo"},
		{Value: "starting", Label: "Starting Soon", Description: "Fresh emerald with forest panel", Gradient: "emerald"},
		{Value: "ending", Label: "Thanks for Watching", Description: "Purple radial glow", Gradient: "purple", ColorMode: "darker"},
		{Value: "technical", Label: "Technical Difficulties", Description: "Monochrome with amber warning", Gradient: "mono"},
		{Value: "gaming", Label: "Gaming / Live", Description: "Bold neon with pulsing line", Gradient: "neon"},
		{Value: "podcast", Label: "Podcast", Description: "Clean lower-third style", Gradient: "slate"},
		{Value: "creative", Label: "Creative", Description: "Mesh aurora with gradient text", Gradient: "palette:aurora"},
		{Value: "custom", Label: "Custom", Description: "Full manual control"},
	},
	KindCTA: {
		{Value: "subscribe", Label: "Subscribe", Description: "YouTube red accent", Gradient: "crimson", ColorMode: "darker"},
		{Value: "like", Label: "Like", Description: "Warm pink accent", Gradient: "sunset"},
		{Value: "follow", Label: "Follow", Description: "Indigo accent", Gradient: "indigo", ColorMode: "darker"},
		{Value: "share", Label: "Share", Description: "Teal/cyan accent", Gradient: "cyan"},
		{Value: "notify", Label: "Notifications", Description: "Amber bell accent", Gradient: "amber"},
		{Value: "donate", Label: "Donate", Description: "Emerald accent", Gradient: "emerald", ColorMode: "darker"},
		{Value: "merch", Label: "Merch", Description: "Gold accent", Gradient: "gold", ColorMode: "darker"},
		{Value: "discord", Label: "Discord", Description: "Purple accent", Gradient: "purple", ColorMode: "darker"},
		{Value: "custom", Label: "Custom", Description: "Full manual control"},
	},
	KindCounter: {
		{Value: "subscriber", Label: "Subscribers", Description: "Heart icon, crimson accent", Gradient: "crimson", ColorMode: "darker"},
		{Value: "follower", Label: "Followers", Description: "Users icon, indigo accent", Gradient: "indigo", ColorMode: "darker"},
		{Value: "viewer", Label: "Viewers", Description: "Eye icon, neon inline", Gradient: "neon"},
		{Value: "donation", Label: "Donations", Description: "Star icon, emerald accent", Gradient: "emerald", ColorMode: "darker"},
		{Value: "custom", Label: "Custom", Description: "Full manual control"},
	},
	KindSocials: {
		{Value: "minimal", Label: "Minimal", Description: "Clean text-forward", Gradient: "slate"},
		{Value: "colorful", Label: "Colorful", Description: "Brand colors with vibrant panel", Gradient: "rainbow"},
		{Value: "branded", Label: "Branded", Description: "Gradient icons with panel", Gradient: "indigo", ColorMode: "darker"},
		{Value: "neon", Label: "Neon", Description: "Neon icons on dark bg", Gradient: "neon", ColorMode: "darker"},
		{Value: "custom", Label: "Custom", Description: "Full manual control"},
	},
	KindBorder: {
		{Value: "neon", Label: "Neon Glow", Description: "Bright neon with dash animation", Gradient: "neon"},
		{Value: "rainbow", Label: "Rainbow", Description: "Full rainbow cycling", Gradient: "rainbow"},
		{Value: "subtle", Label: "Subtle", Description: "Minimal border with soft glow", Gradient: "slate"},
		{Value: "pulse", Label: "Pulse", Description: "Pulsing glow animation", Gradient: "indigo"},
		{Value: "custom", Label: "Custom", Description: "Full manual control"},
	},
}

// Cards returns the preset cards of kind.
func Cards(kind Kind) []PresetCard {
	return append([]PresetCard(nil), cards[kind]...)
}
