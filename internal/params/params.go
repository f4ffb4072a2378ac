// SPDX-License-Identifier: MIT

// Package params maps overlay parameter structs to and from URL query strings.
//
// A parameter struct declares its query keys with `query` tags. Embedded
// structs contribute their fields as if declared on the outer struct. Tag
// options after the key:
//
//	color      the value is a hex color; '#' is added on decode and dropped on encode
//	sensitive  the key is left out of shareable URLs
package params

import (
	"errors"
	"reflect"
	"strings"
)

// ErrNotStruct is returned when a destination is not a pointer to a struct.
var ErrNotStruct = errors.New("params: destination must be a non-nil pointer to a struct")

// Patch is a partial parameter layer keyed by query key. Presets and global
// settings are expressed as patches.
type Patch map[string]any

// Clone returns a shallow copy of p.
func (p Patch) Clone() Patch {
	out := make(Patch, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Merge returns a new patch with the layers applied in order, later layers
// winning per key.
func Merge(layers ...Patch) Patch {
	out := Patch{}
	for _, l := range layers {
		for k, v := range l {
			out[k] = v
		}
	}
	return out
}

// Strings returns the string-valued entries of p.
func (p Patch) Strings() map[string]string {
	out := make(map[string]string)
	for k, v := range p {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}

type field struct {
	key       string
	color     bool
	sensitive bool
	value     reflect.Value
}

func structValue(v any) (reflect.Value, bool) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}
	return rv, true
}

func settable(dst any) (reflect.Value, error) {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return reflect.Value{}, ErrNotStruct
	}
	return rv.Elem(), nil
}

func walk(v reflect.Value) []field {
	var out []field
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		fv := v.Field(i)
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
			out = append(out, walk(fv)...)
			continue
		}
		if !sf.IsExported() {
			continue
		}
		tag, ok := sf.Tag.Lookup("query")
		if !ok || tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		f := field{key: name, value: fv}
		for _, opt := range strings.Split(opts, ",") {
			switch opt {
			case "color":
				f.color = true
			case "sensitive":
				f.sensitive = true
			}
		}
		out = append(out, f)
	}
	return out
}

// Keys returns the query keys declared by v in declaration order.
func Keys(v any) []string {
	rv, ok := structValue(v)
	if !ok {
		return nil
	}
	fields := walk(rv)
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.key
	}
	return keys
}

// Sensitive returns the keys of v tagged sensitive.
func Sensitive(v any) []string {
	rv, ok := structValue(v)
	if !ok {
		return nil
	}
	var keys []string
	for _, f := range walk(rv) {
		if f.sensitive {
			keys = append(keys, f.key)
		}
	}
	return keys
}

// Values flattens v into a patch holding every declared key.
func Values(v any) Patch {
	rv, ok := structValue(v)
	if !ok {
		return nil
	}
	out := Patch{}
	for _, f := range walk(rv) {
		out[f.key] = f.value.Interface()
	}
	return out
}
