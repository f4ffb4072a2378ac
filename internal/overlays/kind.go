// SPDX-License-Identifier: MIT

// Package overlays defines the parameters of every overlay kind, their
// presets, and the resolution chain that turns a query string into the
// final parameter set and style of one overlay page.
package overlays

import (
	"errors"
	"fmt"
	"strings"
)

// Kind names an overlay type.
type Kind string

const (
	KindText    Kind = "text"
	KindBorder  Kind = "border"
	KindCounter Kind = "counter"
	KindCTA     Kind = "cta"
	KindSocials Kind = "socials"
	KindMesh    Kind = "mesh"
)

// Kinds lists every overlay kind in display order.
var Kinds = []Kind{KindText, KindBorder, KindCounter, KindCTA, KindSocials, KindMesh}

// ErrUnknownKind is returned for an overlay kind that does not exist.
var ErrUnknownKind = errors.New("unknown overlay kind")

// ParseKind parses an overlay kind name.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Path is the URL path an OBS browser source loads for k.
func (k Kind) Path() string {
	return "/overlays/" + string(k)
}

// Params is implemented by the parameter struct of every kind.
type Params interface {
	Kind() Kind
}

// Default returns a pointer to a fresh copy of the defaults of k.
func Default(k Kind) (Params, error) {
	switch k {
	case KindText:
		p := DefaultText()
		return &p, nil
	case KindBorder:
		p := DefaultBorder()
		return &p, nil
	case KindCounter:
		p := DefaultCounter()
		return &p, nil
	case KindCTA:
		p := DefaultCTA()
		return &p, nil
	case KindSocials:
		p := DefaultSocials()
		return &p, nil
	case KindMesh:
		p := DefaultMesh()
		return &p, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(k))
}
