// SPDX-License-Identifier: MIT
package overlays

import "github.com/thatcatcamp/obskit/internal/themes"

// MeshParams configures the animated mesh gradient background. It has no
// presets and takes no brand settings.
type MeshParams struct {
	Seed      int     `query:"seed"`
	Points    int     `query:"points" validate:"min=2,max=8"`
	Palette   string  `query:"palette" validate:"oneof=pastel aurora forest neon twilight vibrant sunset ocean"`
	Mode      string  `query:"mode" validate:"oneof=normal dark light"`
	Animation string  `query:"animation" validate:"oneof=none drift pulse swirl"`
	Speed     float64 `query:"speed" validate:"min=0,max=10"`
	Blur      float64 `query:"blur" validate:"min=0,max=400"`
	Scale     float64 `query:"scale" validate:"gt=0,max=10"`
	Opacity   float64 `query:"opacity" validate:"min=0,max=1"`
	Blend     string  `query:"blend" validate:"oneof=normal multiply screen overlay soft-light"`
	Bg        string  `query:"bg,color" validate:"omitempty,hexcolor"`
}

func (*MeshParams) Kind() Kind { return KindMesh }

// DefaultMesh returns the mesh overlay defaults.
func DefaultMesh() MeshParams {
	return MeshParams{
		Seed:      42,
		Points:    3,
		Palette:   "pastel",
		Mode:      "normal",
		Animation: "drift",
		Speed:     1,
		Blur:      100,
		Scale:     1,
		Opacity:   1,
		Blend:     "normal",
		Bg:        "#000000",
	}
}

// Stops returns the first Points colors of the palette, cycling when the
// palette is shorter.
func (p *MeshParams) Stops() []string {
	palette := themes.LookupPalette(p.Palette)
	n := p.Points
	if n < 2 {
		n = 2
	}
	out := make([]string, n)
	for i := range out {
		out[i] = palette[i%len(palette)]
	}
	return out
}
