// SPDX-License-Identifier: MIT

// Package settings holds the global brand settings applied beneath every
// overlay, plus the small bits of configurator state that persist between
// sessions.
package settings

import (
	"errors"
	"log"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/thatcatcamp/obskit/internal/params"
	"github.com/thatcatcamp/obskit/internal/storage"
	"github.com/thatcatcamp/obskit/internal/themes"
)

// StorageKey is where the global settings record is persisted.
const StorageKey = "obs-toolkit-global"

// Settings are the cross-overlay brand defaults chosen during setup.
type Settings struct {
	Theme         string `json:"theme"`
	Gradient      string `json:"gradient"`
	GradientType  string `json:"gradienttype"`
	Font          string `json:"font"`
	ColorMode     string `json:"colormode"`
	SetupComplete bool   `json:"setupComplete"`
}

// Defaults returns the settings used before setup has run.
func Defaults() Settings {
	return Settings{
		Theme:        "dark",
		Gradient:     "indigo",
		GradientType: "linear",
		Font:         "display",
		ColorMode:    "normal",
	}
}

// Overrides returns the layer applied onto overlay defaults. It is empty
// until setup is complete.
func (s Settings) Overrides() params.Patch {
	if !s.SetupComplete {
		return params.Patch{}
	}
	return params.Patch{
		"theme":        s.Theme,
		"gradient":     s.Gradient,
		"gradienttype": s.GradientType,
		"font":         s.Font,
		"colormode":    s.ColorMode,
	}
}

// Partial is an update to Settings. Nil fields are left unchanged.
type Partial struct {
	Theme         *string `json:"theme,omitempty" validate:"omitempty,oneof=dark light"`
	Gradient      *string `json:"gradient,omitempty" validate:"omitempty,gradient"`
	GradientType  *string `json:"gradienttype,omitempty" validate:"omitempty,oneof=linear radial conic mesh"`
	Font          *string `json:"font,omitempty" validate:"omitempty,min=1"`
	ColorMode     *string `json:"colormode,omitempty" validate:"omitempty,oneof=normal darker"`
	SetupComplete *bool   `json:"setupComplete,omitempty"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("gradient", func(fl validator.FieldLevel) bool {
		return themes.HasGradient(fl.Field().String())
	})
	return v
}

// Validate reports the first invalid field of p.
func (p Partial) Validate() error {
	err := validate.Struct(p)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &InvalidFieldError{Field: verrs[0].Field(), Tag: verrs[0].Tag()}
	}
	return err
}

// InvalidFieldError is returned by Partial.Validate.
type InvalidFieldError struct {
	Field string
	Tag   string
}

func (e *InvalidFieldError) Error() string {
	return "invalid value for " + e.Field + " (" + e.Tag + ")"
}

func (s Settings) merge(p Partial) Settings {
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	if p.Gradient != nil {
		s.Gradient = *p.Gradient
	}
	if p.GradientType != nil {
		s.GradientType = *p.GradientType
	}
	if p.Font != nil {
		s.Font = *p.Font
	}
	if p.ColorMode != nil {
		s.ColorMode = *p.ColorMode
	}
	if p.SetupComplete != nil {
		s.SetupComplete = *p.SetupComplete
	}
	return s
}

// Manager owns the live settings record and its persistence. Create one per
// process and pass it to whatever needs it.
type Manager struct {
	mu      sync.RWMutex
	store   storage.Store
	current Settings
}

// NewManager returns a manager holding the defaults. Call Load to read the
// persisted record.
func NewManager(store storage.Store) *Manager {
	return &Manager{store: store, current: Defaults()}
}

// Load reads the persisted record over the defaults. Missing or corrupt data
// yields the defaults.
func (m *Manager) Load() Settings {
	s := Defaults()
	if err := storage.GetJSON(m.store, StorageKey, &s); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("[settings] ignoring stored settings: %v", err)
		}
		s = Defaults()
	}

	m.mu.Lock()
	m.current = s
	m.mu.Unlock()
	return s
}

// Current returns the live settings.
func (m *Manager) Current() Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Update merges p into the live settings and persists the result.
func (m *Manager) Update(p Partial) Settings {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.merge(p)
	m.persist()
	return m.current
}

// Reset restores and persists the defaults.
func (m *Manager) Reset() Settings {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = Defaults()
	m.persist()
	return m.current
}

// persist must be called with mu held. Failures are logged, never returned.
func (m *Manager) persist() {
	if err := storage.SetJSON(m.store, StorageKey, m.current); err != nil {
		log.Printf("[settings] failed to persist settings: %v", err)
	}
}
