// SPDX-License-Identifier: MIT

// Package poller fetches counter values from remote APIs on an interval and
// fans the results out to connected overlays.
package poller

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// ErrNoValue is returned when a JSON path does not lead to a value.
var ErrNoValue = errors.New("could not find value at path")

// Extract walks doc along a dot separated path. Numeric segments index into
// arrays. Any missing segment yields nil. An empty path returns doc.
func Extract(doc any, path string) any {
	if path == "" {
		return doc
	}
	cur := doc
	for _, seg := range strings.Split(path, ".") {
		switch v := cur.(type) {
		case map[string]any:
			next, ok := v[seg]
			if !ok {
				return nil
			}
			cur = next
		case []any:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(v) {
				return nil
			}
			cur = v[i]
		default:
			return nil
		}
	}
	return cur
}

// ExtractNumber extracts a numeric value. String values are parsed as
// floats, since several APIs report counts as strings.
func ExtractNumber(doc any, path string) (float64, error) {
	switch v := Extract(doc, path).(type) {
	case nil:
		return 0, fmt.Errorf("%w: %s", ErrNoValue, path)
	case float64:
		return v, nil
	case json.Number:
		return v.Float64()
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("value at %s is not a number: %q", path, v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("value at %s is not a number: %v", path, v)
	}
}
