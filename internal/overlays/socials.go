// SPDX-License-Identifier: MIT
package overlays

import (
	"sort"
	"strconv"
	"strings"

	"github.com/thatcatcamp/obskit/internal/params"
)

// SocialsParams configures the row of social links.
type SocialsParams struct {
	Preset        string  `query:"preset"`
	Show          string  `query:"show"`
	Handles       string  `query:"handles"`
	Layout        string  `query:"layout" validate:"oneof=horizontal vertical grid"`
	Size          string  `query:"size" validate:"oneof=sm md lg xl"`
	ShowText      bool    `query:"showtext"`
	Bg            bool    `query:"bg"`
	Gap           float64 `query:"gap" validate:"min=0,max=200"`
	Spacing       float64 `query:"spacing" validate:"min=0,max=200"`
	BorderRadius  float64 `query:"borderradius" validate:"min=0,max=200"`
	IconColor     string  `query:"iconcolor" validate:"oneof=brand white gradient platform"`
	IconSize      float64 `query:"iconsize" validate:"min=0,max=400"`
	IconPadding   float64 `query:"iconpadding" validate:"min=0,max=200"`
	Font          string  `query:"font"`
	FontSize      float64 `query:"fontsize" validate:"min=0,max=400"`
	FontWeight    int     `query:"fontweight" validate:"min=100,max=900"`
	LetterSpacing float64 `query:"letterspacing"`
	HandleColor   string  `query:"handlecolor,color" validate:"omitempty,hexcolor"`
	Entrance      string  `query:"entrance" validate:"oneof=none fade stagger slideUp slideDown slideLeft slideRight scale"`
	Speed         float64 `query:"speed" validate:"min=0,max=10"`
	Delay         float64 `query:"delay" validate:"min=0"`
	Exit          string  `query:"exit" validate:"oneof=none fade slideUp slideDown slideLeft slideRight scale"`
	ExitAfter     float64 `query:"exitafter" validate:"min=0"`
	ExitSpeed     float64 `query:"exitspeed" validate:"min=0,max=10"`
	Loop          bool    `query:"loop"`
	Hold          float64 `query:"hold" validate:"min=0"`
	Pause         float64 `query:"pause" validate:"min=0"`
	OneByOne      bool    `query:"onebyone"`
	Each          float64 `query:"each" validate:"min=0"`
	EachPause     float64 `query:"eachpause" validate:"min=0"`
	Order         string  `query:"order" validate:"oneof=default priority"`
	Priority      string  `query:"priority"`
	Icons         string  `query:"icons"`
	Panel
	Brand
}

func (*SocialsParams) Kind() Kind { return KindSocials }

// DefaultSocials returns the socials overlay defaults.
func DefaultSocials() SocialsParams {
	return SocialsParams{
		Preset:       presetCustom,
		Layout:       "horizontal",
		Size:         "md",
		ShowText:     true,
		Bg:           true,
		Gap:          16,
		BorderRadius: 8,
		IconColor:    "brand",
		Font:         "body",
		FontWeight:   500,
		Entrance:     "stagger",
		Speed:        0.5,
		Delay:        0.3,
		Exit:         "none",
		ExitSpeed:    0.5,
		Hold:         5,
		Pause:        3,
		Each:         3,
		EachPause:    0.5,
		Order:        "default",
		Panel:        defaultPanel(),
		Brand:        defaultBrand(),
	}
}

// SocialsPreset names a ready-made socials look.
type SocialsPreset string

const (
	SocialsMinimal  SocialsPreset = "minimal"
	SocialsColorful SocialsPreset = "colorful"
	SocialsBranded  SocialsPreset = "branded"
	SocialsNeon     SocialsPreset = "neon"
	SocialsCustom   SocialsPreset = presetCustom
)

var socialsPresetOrder = []SocialsPreset{SocialsMinimal, SocialsColorful, SocialsBranded, SocialsNeon, SocialsCustom}

// ParseSocialsPreset maps unknown names to SocialsCustom.
func ParseSocialsPreset(s string) SocialsPreset {
	p := SocialsPreset(s)
	if _, ok := socialsPresets[p]; ok {
		return p
	}
	return SocialsCustom
}

var socialsPresets = map[SocialsPreset]params.Patch{
	SocialsMinimal: {
		"layout":    "horizontal",
		"size":      "md",
		"showtext":  true,
		"bg":        false,
		"iconcolor": "white",
		"font":      "body",
		"entrance":  "fade",
		"gradient":  "slate",
	},
	SocialsColorful: {
		"layout":         "horizontal",
		"size":           "lg",
		"showtext":       true,
		"bg":             true,
		"iconcolor":      "brand",
		"font":           "display",
		"entrance":       "stagger",
		"gradient":       "rainbow",
		"bggradient":     true,
		"bggradientname": "palette:vibrant",
		"colormode":      "darker",
	},
	SocialsBranded: {
		"layout":         "horizontal",
		"size":           "md",
		"showtext":       true,
		"bg":             true,
		"iconcolor":      "gradient",
		"font":           "display",
		"entrance":       "stagger",
		"gradient":       "indigo",
		"bggradient":     true,
		"bggradientname": "indigo",
		"colormode":      "darker",
	},
	SocialsNeon: {
		"layout":         "vertical",
		"size":           "lg",
		"showtext":       true,
		"bg":             true,
		"iconcolor":      "gradient",
		"font":           "mono",
		"entrance":       "stagger",
		"gradient":       "neon",
		"bggradient":     true,
		"bggradientname": "palette:neon",
		"colormode":      "darker",
	},
	SocialsCustom: {},
}

// Platform describes a supported social network.
type Platform struct {
	Name   string `json:"name"`
	Icon   string `json:"icon"`
	Color  string `json:"color"`
	Prefix string `json:"prefix"`
}

var platformOrder = []string{
	"github", "twitter", "linkedin", "youtube", "instagram", "twitch", "kick", "discord", "website",
}

var platforms = map[string]Platform{
	"github":    {Name: "GitHub", Icon: "github", Color: "#f0f6fc"},
	"twitter":   {Name: "Twitter", Icon: "twitter", Color: "#1da1f2", Prefix: "@"},
	"linkedin":  {Name: "LinkedIn", Icon: "linkedin", Color: "#0a66c2"},
	"youtube":   {Name: "YouTube", Icon: "youtube", Color: "#ff0000", Prefix: "@"},
	"instagram": {Name: "Instagram", Icon: "instagram", Color: "#e4405f", Prefix: "@"},
	"twitch":    {Name: "Twitch", Icon: "twitch", Color: "#9146ff"},
	"kick":      {Name: "Kick", Icon: "kick", Color: "#53fc18"},
	"discord":   {Name: "Discord", Icon: "discord", Color: "#5865f2"},
	"website":   {Name: "Website", Icon: "globe", Color: "#6366f1"},
}

// LookupPlatform returns a platform by key.
func LookupPlatform(key string) (Platform, bool) {
	p, ok := platforms[strings.ToLower(strings.TrimSpace(key))]
	return p, ok
}

// SocialEntry is one rendered link of the socials overlay.
type SocialEntry struct {
	Platform string `json:"platform"`
	Name     string `json:"name"`
	Handle   string `json:"handle"`
	Icon     string `json:"icon"`
	Color    string `json:"color"`
}

// pairs parses "a:x,b:y" lists. Keys are lowercased and later pairs win.
func pairs(s string) map[string]string {
	out := make(map[string]string)
	for _, item := range strings.Split(s, ",") {
		k, v, ok := strings.Cut(item, ":")
		k = strings.ToLower(strings.TrimSpace(k))
		if !ok || k == "" {
			continue
		}
		out[k] = strings.TrimSpace(v)
	}
	return out
}

// SocialEntries builds the ordered list of links to show. Platforms come from
// show, or from handles when show is empty; platforms without a handle and
// unknown platforms are skipped.
func (p *SocialsParams) SocialEntries() []SocialEntry {
	handles := pairs(p.Handles)
	icons := pairs(p.Icons)

	var keys []string
	if strings.TrimSpace(p.Show) != "" {
		seen := make(map[string]bool)
		for _, k := range strings.Split(p.Show, ",") {
			k = strings.ToLower(strings.TrimSpace(k))
			if k == "" || seen[k] {
				continue
			}
			seen[k] = true
			keys = append(keys, k)
		}
	} else {
		for _, k := range platformOrder {
			if _, ok := handles[k]; ok {
				keys = append(keys, k)
			}
		}
	}

	var entries []SocialEntry
	for _, k := range keys {
		platform, ok := platforms[k]
		handle := handles[k]
		if !ok || handle == "" {
			continue
		}
		if platform.Prefix != "" && !strings.HasPrefix(handle, platform.Prefix) {
			handle = platform.Prefix + handle
		}
		icon := platform.Icon
		if custom := icons[k]; custom != "" {
			icon = custom
		}
		entries = append(entries, SocialEntry{
			Platform: k,
			Name:     platform.Name,
			Handle:   handle,
			Icon:     icon,
			Color:    platform.Color,
		})
	}

	if p.Order == "priority" {
		prio := make(map[string]float64)
		for k, v := range pairs(p.Priority) {
			if n, err := strconv.ParseFloat(v, 64); err == nil {
				prio[k] = n
			}
		}
		rank := func(e SocialEntry) (float64, bool) {
			n, ok := prio[e.Platform]
			return n, ok
		}
		sort.SliceStable(entries, func(i, j int) bool {
			a, aok := rank(entries[i])
			b, bok := rank(entries[j])
			switch {
			case aok && bok:
				return a < b
			case aok:
				return true
			default:
				return false
			}
		})
	}
	return entries
}
