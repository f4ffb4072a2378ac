// SPDX-License-Identifier: MIT
package overlays

import (
	"log"
	"net/url"
	"strings"

	"github.com/thatcatcamp/obskit/internal/fonts"
	"github.com/thatcatcamp/obskit/internal/params"
	"github.com/thatcatcamp/obskit/internal/settings"
	"github.com/thatcatcamp/obskit/internal/themes"
)

// Resolved is the final parameter set of one overlay page and the style
// derived from it.
type Resolved struct {
	Kind        Kind           `json:"kind"`
	Preset      string         `json:"preset"`
	Params      Params         `json:"-"`
	Values      params.Patch   `json:"params"`
	Theme       themes.Theme   `json:"theme"`
	Accents     themes.Accents `json:"accents"`
	Stops       []string       `json:"stops"`
	BgStops     []string       `json:"bgStops"`
	GradientCSS string         `json:"gradientCss"`
	CSS         string         `json:"css"`
	FontFamily  string         `json:"fontFamily"`
	Reset       []string       `json:"reset,omitempty"`
}

// Resolver resolves overlay parameters. The zero value is ready to use.
type Resolver struct {
	// CustomFonts backs the custom1..customN font slots.
	CustomFonts []string
}

// Resolve runs the parameter chain with a zero Resolver.
func Resolve(kind Kind, global settings.Settings, q url.Values) (*Resolved, error) {
	return Resolver{}.Resolve(kind, global, q)
}

// Resolve layers, lowest first: the kind defaults, the global brand settings
// (only once setup is complete), the preset adapted to the final theme, and
// the query. Fields that fail validation fall back to the kind default. The
// only error is an unknown kind.
func (r Resolver) Resolve(kind Kind, global settings.Settings, q url.Values) (*Resolved, error) {
	p, err := Default(kind)
	if err != nil {
		return nil, err
	}
	defaults, _ := Default(kind)

	if _, err := params.Apply(p, global.Overrides()); err != nil {
		return nil, err
	}

	preset := ParsePreset(kind, presetName(p, q))
	if patch := Presets(kind, preset); len(patch) > 0 {
		if _, err := params.Apply(p, adaptPatch(patch, finalTheme(p, patch, q))); err != nil {
			return nil, err
		}
	}

	if err := params.Decode(p, q); err != nil {
		return nil, err
	}
	if _, err := params.Apply(p, params.Patch{"preset": preset}); err != nil {
		return nil, err
	}
	if n, ok := p.(normalizer); ok {
		n.normalize()
	}
	reset := params.Sanitize(p, defaults)
	if len(reset) > 0 {
		log.Printf("[overlays] %s: invalid params reset to defaults: %s", kind, strings.Join(reset, ", "))
	}

	res := &Resolved{
		Kind:   kind,
		Preset: preset,
		Params: p,
		Values: params.Values(p),
		Reset:  reset,
	}
	for _, k := range params.Sensitive(p) {
		delete(res.Values, k)
	}
	r.style(res)
	return res, nil
}

func presetName(p Params, q url.Values) string {
	if _, ok := q["preset"]; ok {
		return q.Get("preset")
	}
	if name, ok := params.Values(p)["preset"].(string); ok {
		return name
	}
	return presetCustom
}

// finalTheme is the theme the page ends up with, known before the preset is
// applied so preset colors can be adapted to it.
func finalTheme(p Params, patch params.Patch, q url.Values) string {
	if _, ok := q["theme"]; ok {
		return themes.LookupTheme(q.Get("theme")).Name
	}
	if t, ok := patch["theme"].(string); ok {
		return themes.LookupTheme(t).Name
	}
	if b, ok := p.(branded); ok {
		return themes.LookupTheme(b.brand().Theme).Name
	}
	return themes.Dark
}

func adaptPatch(patch params.Patch, theme string) params.Patch {
	adapted := themes.AdaptColors(patch.Strings(), theme)
	out := patch.Clone()
	for _, k := range themes.ContrastKeys {
		if v, ok := adapted[k]; ok {
			out[k] = v
		}
	}
	return out
}

func (r Resolver) style(res *Resolved) {
	gradientType := themes.GradientLinear
	colorMode := themes.ColorModeNormal
	theme := themes.LookupTheme(themes.Dark)

	switch p := res.Params.(type) {
	case *MeshParams:
		res.Stops = p.Stops()
		gradientType = themes.GradientMesh
		if p.Mode == themes.Light {
			theme = themes.LookupTheme(themes.Light)
		}
	case branded:
		b := p.brand()
		theme = themes.LookupTheme(b.Theme)
		gradientType = b.GradientType
		colorMode = b.ColorMode
		if len(b.Colors) > 0 {
			res.Stops = append([]string(nil), b.Colors...)
		} else {
			res.Stops = themes.LookupGradient(b.Gradient)
		}
	}

	bgBase := res.Stops
	if pl, ok := res.Params.(paneled); ok {
		if name := pl.panel().BgGradientName; name != "" {
			bgBase = themes.LookupGradient(name)
		}
	}
	res.BgStops = themes.BackgroundStops(bgBase, colorMode)

	res.Theme = theme
	res.Accents = themes.ThemeAccents(theme.Name)
	if font, ok := res.Values["font"].(string); ok {
		res.FontFamily = fonts.Family(font, r.CustomFonts)
	}
	res.GradientCSS = themes.GradientCSS(res.Stops, gradientType, defaultAngle)
	res.CSS = themes.GenerateCSS(themes.Style{
		Theme:        theme,
		Accents:      res.Accents,
		Stops:        res.Stops,
		BgStops:      res.BgStops,
		GradientType: gradientType,
		Angle:        defaultAngle,
		FontFamily:   res.FontFamily,
	})
}
