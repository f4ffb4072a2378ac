// SPDX-License-Identifier: MIT
package overlays

import (
	"github.com/go-playground/validator/v10"
	"github.com/thatcatcamp/obskit/internal/params"
	"github.com/thatcatcamp/obskit/internal/themes"
)

// defaultAngle is the angle of linear and conic gradients.
const defaultAngle = 135

// presetCustom is the preset name every kind reserves for "no preset".
const presetCustom = "custom"

func init() {
	params.MustRegisterValidation("gradient", func(fl validator.FieldLevel) bool {
		return themes.HasGradient(fl.Field().String())
	})
}

// Brand holds the theme fields shared by most overlays. Global brand
// settings write into these.
type Brand struct {
	Theme        string   `query:"theme" validate:"oneof=dark light"`
	Gradient     string   `query:"gradient" validate:"gradient"`
	GradientType string   `query:"gradienttype" validate:"oneof=linear radial conic mesh"`
	Colors       []string `query:"colors,color" validate:"omitempty,dive,hexcolor"`
	ColorMode    string   `query:"colormode" validate:"oneof=normal darker"`
}

func (b *Brand) brand() *Brand { return b }

func defaultBrand() Brand {
	return Brand{
		Theme:        themes.Dark,
		Gradient:     themes.DefaultGradient,
		GradientType: themes.GradientLinear,
		ColorMode:    themes.ColorModeNormal,
	}
}

// Panel is the optional background panel behind overlay content.
type Panel struct {
	BgColor        string  `query:"bgcolor,color" validate:"omitempty,hexcolor"`
	BgOpacity      float64 `query:"bgopacity" validate:"min=0,max=1"`
	BgShadow       string  `query:"bgshadow" validate:"oneof=none sm md lg xl"`
	BgBlur         float64 `query:"bgblur" validate:"min=0,max=100"`
	BgRadius       float64 `query:"bgradius" validate:"min=0,max=200"`
	BgGradient     bool    `query:"bggradient"`
	BgGradientName string  `query:"bggradientname" validate:"omitempty,gradient"`
}

func (p *Panel) panel() *Panel { return p }

func defaultPanel() Panel {
	return Panel{
		BgOpacity: 0.85,
		BgShadow:  "md",
		BgBlur:    12,
		BgRadius:  14,
	}
}

type branded interface {
	brand() *Brand
}

// normalizer is implemented by params that clamp values instead of
// resetting them.
type normalizer interface {
	normalize()
}

type paneled interface {
	panel() *Panel
}
