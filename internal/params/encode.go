// SPDX-License-Identifier: MIT
package params

import (
	"net/url"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

type encodeOptions struct {
	exclude []string
}

// Option configures Encode.
type Option func(*encodeOptions)

// WithExclude leaves the given keys out of the encoded values.
func WithExclude(keys ...string) Option {
	return func(o *encodeOptions) {
		o.exclude = append(o.exclude, keys...)
	}
}

// Encode returns the keys of v whose values differ from defaults. v and
// defaults must be the same struct type; when they are not, every key of v is
// emitted. Lists are comma-joined and booleans are "true" or "false".
func Encode(v, defaults any, opts ...Option) url.Values {
	var o encodeOptions
	for _, opt := range opts {
		opt(&o)
	}

	out := url.Values{}
	rv, ok := structValue(v)
	if !ok {
		return out
	}
	fields := walk(rv)

	var defFields []field
	if dv, ok := structValue(defaults); ok && dv.Type() == rv.Type() {
		defFields = walk(dv)
	}

	for i, f := range fields {
		if slices.Contains(o.exclude, f.key) {
			continue
		}
		s := format(f)
		if defFields != nil && s == format(defFields[i]) {
			continue
		}
		out.Set(f.key, s)
	}
	return out
}

func format(f field) string {
	v := f.value
	switch v.Kind() {
	case reflect.String:
		if f.color {
			return strings.TrimPrefix(v.String(), "#")
		}
		return v.String()
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Slice:
		parts := make([]string, v.Len())
		for i := range parts {
			s := v.Index(i).String()
			if f.color {
				s = strings.TrimPrefix(s, "#")
			}
			parts[i] = s
		}
		return strings.Join(parts, ",")
	}
	return ""
}

// URL joins base, path and the encoded query.
func URL(base, path string, q url.Values) string {
	u := strings.TrimRight(base, "/") + path
	if s := q.Encode(); s != "" {
		u += "?" + s
	}
	return u
}

// URLs returns the shareable URL, which leaves out sensitive keys, and the
// full URL meant only for pasting into an OBS browser source.
func URLs(base, path string, v, defaults any) (share, full string) {
	share = URL(base, path, Encode(v, defaults, WithExclude(Sensitive(v)...)))
	full = URL(base, path, Encode(v, defaults))
	return share, full
}
