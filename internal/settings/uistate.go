// SPDX-License-Identifier: MIT
package settings

import (
	"errors"
	"log"
	"strings"

	"github.com/thatcatcamp/obskit/internal/storage"
)

const collapsiblePrefix = "collapsible-"

// UIState remembers which configurator sections are open.
type UIState struct {
	store storage.Store
}

// NewUIState returns UI state backed by store.
func NewUIState(store storage.Store) *UIState {
	return &UIState{store: store}
}

// Collapsible reports whether section key is open, or defaultOpen when
// nothing is stored.
func (u *UIState) Collapsible(key string, defaultOpen bool) bool {
	v, err := u.store.Get(collapsiblePrefix + key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("[settings] failed to read section %s: %v", key, err)
		}
		return defaultOpen
	}
	switch v {
	case "open":
		return true
	case "closed":
		return false
	}
	return defaultOpen
}

// SetCollapsible stores whether section key is open.
func (u *UIState) SetCollapsible(key string, open bool) error {
	v := "closed"
	if open {
		v = "open"
	}
	return u.store.Set(collapsiblePrefix+key, v)
}

// Sections returns every stored section state.
func (u *UIState) Sections() (map[string]bool, error) {
	keys, err := u.store.Keys(collapsiblePrefix)
	if err != nil {
		return nil, err
	}
	out := make(map[string]bool, len(keys))
	for _, k := range keys {
		name := strings.TrimPrefix(k, collapsiblePrefix)
		out[name] = u.Collapsible(name, false)
	}
	return out, nil
}
