package themes

import "strings"

// DefaultGradient is used whenever a gradient name does not resolve.
const DefaultGradient = "indigo"

// PalettePrefix marks a gradient name that refers to a mesh palette,
// e.g. "palette:aurora".
const PalettePrefix = "palette:"

// Gradient is a named, ordered sequence of hex color stops.
type Gradient struct {
	Name  string   `json:"name"`
	Stops []string `json:"stops"`
}

var gradientOrder = []string{
	"indigo", "cyan", "sunset", "emerald", "neon", "frost", "fire", "ocean",
	"purple", "mono", "rainbow", "lavender", "crimson", "mint", "amber", "navy",
	"coral", "slate", "gold", "teal", "magenta",
}

var gradients = map[string][]string{
	"indigo":   {"#6366f1", "#8b5cf6", "#a78bfa", "#c4b5fd", "#818cf8"},
	"cyan":     {"#06b6d4", "#22d3ee", "#67e8f9", "#a5f3fc", "#0891b2"},
	"sunset":   {"#f43f5e", "#f59e0b", "#fbbf24", "#f97316", "#ef4444"},
	"emerald":  {"#10b981", "#34d399", "#6ee7b7", "#a7f3d0", "#059669"},
	"neon":     {"#6366f1", "#06b6d4", "#10b981", "#f59e0b", "#f43f5e"},
	"frost":    {"#818cf8", "#93c5fd", "#a5b4fc", "#c7d2fe", "#e0e7ff"},
	"fire":     {"#ef4444", "#f97316", "#f59e0b", "#fbbf24", "#fde68a"},
	"ocean":    {"#0ea5e9", "#06b6d4", "#14b8a6", "#2dd4bf", "#5eead4"},
	"purple":   {"#7c3aed", "#8b5cf6", "#a78bfa", "#c4b5fd", "#ddd6fe"},
	"mono":     {"#6b7280", "#9ca3af", "#d1d5db", "#9ca3af", "#6b7280"},
	"rainbow":  {"#ef4444", "#f59e0b", "#10b981", "#06b6d4", "#6366f1", "#8b5cf6"},
	"lavender": {"#8b5cf6", "#a78bfa", "#c4b5fd", "#ddd6fe", "#e9d5ff"},
	"crimson":  {"#be123c", "#e11d48", "#f43f5e", "#fb7185", "#fda4af"},
	"mint":     {"#059669", "#10b981", "#34d399", "#6ee7b7", "#a7f3d0"},
	"amber":    {"#d97706", "#f59e0b", "#fbbf24", "#fcd34d", "#fde68a"},
	"navy":     {"#1e3a8a", "#1e40af", "#2563eb", "#3b82f6", "#60a5fa"},
	"coral":    {"#ea580c", "#f97316", "#fb923c", "#fdba74", "#fed7aa"},
	"slate":    {"#334155", "#475569", "#64748b", "#94a3b8", "#cbd5e1"},
	"gold":     {"#ca8a04", "#eab308", "#facc15", "#fde047", "#fef08a"},
	"teal":     {"#0f766e", "#14b8a6", "#2dd4bf", "#5eead4", "#99f6e4"},
	"magenta":  {"#a21caf", "#c026d3", "#d946ef", "#e879f9", "#f0abfc"},
}

// Mesh palettes are softer multi-blob color sets used by the mesh overlay
// and by "palette:<name>" gradient references.
var paletteOrder = []string{
	"pastel", "aurora", "forest", "neon", "twilight", "vibrant", "sunset", "ocean",
}

var palettes = map[string][]string{
	"pastel":   {"#fbcfe8", "#bfdbfe", "#bbf7d0", "#fde68a", "#ddd6fe"},
	"aurora":   {"#22d3ee", "#34d399", "#a78bfa", "#2dd4bf", "#818cf8"},
	"forest":   {"#14532d", "#166534", "#15803d", "#4d7c0f", "#065f46"},
	"neon":     {"#f0abfc", "#22d3ee", "#a3e635", "#f472b6", "#818cf8"},
	"twilight": {"#1e1b4b", "#4c1d95", "#831843", "#312e81", "#7c2d12"},
	"vibrant":  {"#ef4444", "#f59e0b", "#22c55e", "#3b82f6", "#d946ef"},
	"sunset":   {"#fb7185", "#f97316", "#fbbf24", "#c026d3", "#f43f5e"},
	"ocean":    {"#0c4a6e", "#0369a1", "#0891b2", "#0d9488", "#1e40af"},
}

// LookupGradient returns the stops of a named gradient. Names with the
// "palette:" prefix resolve against the mesh palettes. Unknown names fall back
// to the indigo gradient. The returned slice is a copy.
func LookupGradient(name string) []string {
	name = strings.ToLower(strings.TrimSpace(name))
	if strings.HasPrefix(name, PalettePrefix) {
		if stops, ok := palettes[strings.TrimPrefix(name, PalettePrefix)]; ok {
			return clone(stops)
		}
		return clone(gradients[DefaultGradient])
	}
	if stops, ok := gradients[name]; ok {
		return clone(stops)
	}
	return clone(gradients[DefaultGradient])
}

// LookupPalette returns the stops of a mesh palette, falling back to pastel.
func LookupPalette(name string) []string {
	name = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), PalettePrefix)
	if stops, ok := palettes[name]; ok {
		return clone(stops)
	}
	return clone(palettes["pastel"])
}

// HasGradient reports whether name resolves without falling back.
func HasGradient(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	if strings.HasPrefix(name, PalettePrefix) {
		_, ok := palettes[strings.TrimPrefix(name, PalettePrefix)]
		return ok
	}
	_, ok := gradients[name]
	return ok
}

// ListGradients returns all named gradients in display order.
func ListGradients() []Gradient {
	out := make([]Gradient, 0, len(gradientOrder))
	for _, name := range gradientOrder {
		out = append(out, Gradient{Name: name, Stops: clone(gradients[name])})
	}
	return out
}

// ListPalettes returns all mesh palettes in display order.
func ListPalettes() []Gradient {
	out := make([]Gradient, 0, len(paletteOrder))
	for _, name := range paletteOrder {
		out = append(out, Gradient{Name: name, Stops: clone(palettes[name])})
	}
	return out
}

func clone(in []string) []string {
	return append([]string(nil), in...)
}
