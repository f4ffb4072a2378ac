// SPDX-License-Identifier: MIT
package overlays

import (
	"math"

	"github.com/thatcatcamp/obskit/internal/params"
)

// Counter value sources.
const (
	ServiceManual  = "custom"
	ServiceYouTube = "youtube"
	ServiceTwitch  = "twitch"
	ServiceGitHub  = "github"
	ServicePoll    = "poll"
)

// CounterParams configures the numeric counter overlay.
type CounterParams struct {
	Preset      string  `query:"preset"`
	Value       float64 `query:"value"`
	Label       string  `query:"label"`
	Prefix      string  `query:"prefix"`
	Suffix      string  `query:"suffix"`
	Size        float64 `query:"size" validate:"min=8,max=400"`
	LabelSize   float64 `query:"labelsize" validate:"min=6,max=200"`
	Icon        string  `query:"icon" validate:"oneof=none heart star users eye trophy trending zap youtube twitch github"`
	IconColor   string  `query:"iconcolor,color" validate:"omitempty,hexcolor"`
	Layout      string  `query:"layout" validate:"oneof=stack inline"`
	Align       string  `query:"align" validate:"oneof=left center right"`
	PadX        float64 `query:"counterpadx" validate:"min=0"`
	PadY        float64 `query:"counterpady" validate:"min=0"`
	Width       float64 `query:"width" validate:"min=0"`
	Height      float64 `query:"height" validate:"min=0"`
	Bg          bool    `query:"bg"`
	Font        string  `query:"font"`
	NumberColor string  `query:"numbercolor,color" validate:"omitempty,hexcolor"`
	LabelColor  string  `query:"labelcolor,color" validate:"omitempty,hexcolor"`
	Separator   bool    `query:"separator"`
	Decimals    int     `query:"decimals" validate:"min=0,max=10"`
	Notation    string  `query:"notation" validate:"oneof=standard compact scientific"`
	Abbreviate  bool    `query:"abbreviate"`
	Animate     bool    `query:"animate"`
	Duration    float64 `query:"duration" validate:"min=0,max=60"`
	Trend       bool    `query:"trend"`
	TrendColor  string  `query:"trendcolor,color" validate:"omitempty,hexcolor"`
	Service     string  `query:"service" validate:"oneof=custom youtube twitch github poll"`
	UserID      string  `query:"userid"`
	APIKey      string  `query:"apikey,sensitive"`
	Metric      string  `query:"metric"`
	Poll        string  `query:"poll" validate:"omitempty,url"`
	PollKey     string  `query:"pollkey"`
	PollRate    float64 `query:"pollrate"`
	Panel
	Brand
}

func (*CounterParams) Kind() Kind { return KindCounter }

// Polls reports whether the counter value comes from a remote API.
func (p *CounterParams) Polls() bool {
	switch p.Service {
	case ServiceYouTube, ServiceTwitch, ServiceGitHub:
		return p.UserID != ""
	case ServicePoll:
		return p.Poll != ""
	}
	return false
}

// Poll rate bounds in seconds.
const (
	MinPollRate     = 5
	MaxPollRate     = 300
	DefaultPollRate = 30
)

// ClampPollRate limits seconds to the poll rate bounds. Zero, negative and
// NaN rates become the default.
func ClampPollRate(seconds float64) float64 {
	if math.IsNaN(seconds) || seconds <= 0 {
		return DefaultPollRate
	}
	return min(max(seconds, MinPollRate), MaxPollRate)
}

func (p *CounterParams) normalize() {
	p.PollRate = ClampPollRate(p.PollRate)
}

// NumberFormat returns the formatting options carried by p.
func (p *CounterParams) NumberFormat() NumberFormat {
	return NumberFormat{
		Notation:   p.Notation,
		Separator:  p.Separator,
		Decimals:   p.Decimals,
		Abbreviate: p.Abbreviate,
		Prefix:     p.Prefix,
		Suffix:     p.Suffix,
	}
}

// DefaultCounter returns the counter overlay defaults.
func DefaultCounter() CounterParams {
	return CounterParams{
		Preset:     presetCustom,
		Size:       48,
		LabelSize:  16,
		Icon:       "none",
		Layout:     "stack",
		Align:      "center",
		Bg:         true,
		Font:       "mono",
		Separator:  true,
		Notation:   NotationStandard,
		Animate:    true,
		Duration:   1.5,
		TrendColor: "#10b981",
		Service:    ServiceManual,
		PollRate:   DefaultPollRate,
		Panel:      defaultPanel(),
		Brand:      defaultBrand(),
	}
}

// CounterPreset names a ready-made counter look.
type CounterPreset string

const (
	CounterSubscriber CounterPreset = "subscriber"
	CounterFollower   CounterPreset = "follower"
	CounterViewer     CounterPreset = "viewer"
	CounterDonation   CounterPreset = "donation"
	CounterCustom     CounterPreset = presetCustom
)

var counterPresetOrder = []CounterPreset{
	CounterSubscriber, CounterFollower, CounterViewer, CounterDonation, CounterCustom,
}

// ParseCounterPreset maps unknown names to CounterCustom.
func ParseCounterPreset(s string) CounterPreset {
	p := CounterPreset(s)
	if _, ok := counterPresets[p]; ok {
		return p
	}
	return CounterCustom
}

var counterPresets = map[CounterPreset]params.Patch{
	CounterSubscriber: {
		"label":          "Subscribers",
		"icon":           "heart",
		"size":           48,
		"labelsize":      16,
		"font":           "mono",
		"layout":         "stack",
		"gradient":       "crimson",
		"iconcolor":      "#ef4444",
		"numbercolor":    "",
		"bg":             true,
		"bggradient":     true,
		"bggradientname": "crimson",
		"colormode":      "darker",
	},
	CounterFollower: {
		"label":          "Followers",
		"icon":           "users",
		"size":           48,
		"labelsize":      16,
		"font":           "mono",
		"layout":         "stack",
		"gradient":       "indigo",
		"iconcolor":      "#818cf8",
		"bg":             true,
		"bggradient":     true,
		"bggradientname": "indigo",
		"colormode":      "darker",
	},
	CounterViewer: {
		"label":     "Viewers",
		"icon":      "eye",
		"size":      52,
		"labelsize": 14,
		"font":      "mono",
		"layout":    "inline",
		"gradient":  "neon",
		"iconcolor": "#22d3ee",
		"bg":        true,
	},
	CounterDonation: {
		"label":          "Goal",
		"icon":           "star",
		"size":           44,
		"labelsize":      16,
		"font":           "display",
		"layout":         "stack",
		"gradient":       "emerald",
		"iconcolor":      "#34d399",
		"numbercolor":    "",
		"bg":             true,
		"bggradient":     true,
		"bggradientname": "emerald",
		"colormode":      "darker",
	},
	CounterCustom: {},
}
