// SPDX-License-Identifier: MIT
package params

import (
	"math"
	"net/url"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cast"
	"github.com/thatcatcamp/obskit/internal/colors"
)

// Decode overwrites the fields of dst whose keys are present in q. Values that
// do not parse leave the field as it was, so dst should start out holding the
// defaults. An error is returned only when dst is not a struct pointer.
func Decode(dst any, q url.Values) error {
	rv, err := settable(dst)
	if err != nil {
		return err
	}
	for _, f := range walk(rv) {
		raw, ok := q[f.key]
		if !ok || len(raw) == 0 {
			continue
		}
		setRaw(f, raw[0])
	}
	return nil
}

// DecodeQuery is Decode for a raw query string, with or without the leading '?'.
func DecodeQuery(dst any, query string) error {
	// ParseQuery keeps the pairs that parsed before reporting the first bad one.
	q, _ := url.ParseQuery(strings.TrimPrefix(query, "?"))
	return Decode(dst, q)
}

func setRaw(f field, raw string) {
	v := f.value
	switch v.Kind() {
	case reflect.String:
		if f.color {
			raw = colors.Normalize(raw)
		}
		v.SetString(raw)
	case reflect.Bool:
		v.SetBool(raw != "false" && raw != "0")
	case reflect.Float32, reflect.Float64:
		if n, ok := parseNumber(raw); ok {
			v.SetFloat(n)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if n, ok := parseNumber(raw); ok {
			v.SetInt(int64(math.Trunc(n)))
		}
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.String {
			v.Set(reflect.ValueOf(splitList(raw, f.color)))
		}
	}
}

// leadingNumber matches the numeric prefix of a value such as "40px".
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// parseNumber reads the leading number of raw and ignores the rest, so "40px"
// is 40. Values without a numeric prefix are rejected.
func parseNumber(raw string) (float64, bool) {
	m := leadingNumber.FindString(strings.TrimSpace(raw))
	if m == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

func splitList(raw string, color bool) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if color {
			p = colors.Normalize(p)
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Apply overwrites the fields of dst named by patch. Values are converted to
// the field type; a value that cannot be converted is skipped. Keys dst does
// not declare are ignored. It returns the keys that were applied.
func Apply(dst any, patch Patch) ([]string, error) {
	rv, err := settable(dst)
	if err != nil {
		return nil, err
	}
	var applied []string
	for _, f := range walk(rv) {
		val, ok := patch[f.key]
		if !ok {
			continue
		}
		if assign(f, val) {
			applied = append(applied, f.key)
		}
	}
	return applied, nil
}

func assign(f field, val any) bool {
	v := f.value
	switch v.Kind() {
	case reflect.String:
		s, err := cast.ToStringE(val)
		if err != nil {
			return false
		}
		if f.color {
			s = colors.Normalize(s)
		}
		v.SetString(s)
	case reflect.Bool:
		b, err := cast.ToBoolE(val)
		if err != nil {
			return false
		}
		v.SetBool(b)
	case reflect.Float32, reflect.Float64:
		n, err := cast.ToFloat64E(val)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return false
		}
		v.SetFloat(n)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := cast.ToInt64E(val)
		if err != nil {
			return false
		}
		v.SetInt(n)
	case reflect.Slice:
		if v.Type().Elem().Kind() != reflect.String {
			return false
		}
		if s, ok := val.(string); ok {
			v.Set(reflect.ValueOf(splitList(s, f.color)))
			return true
		}
		list, err := cast.ToStringSliceE(val)
		if err != nil {
			return false
		}
		v.Set(reflect.ValueOf(splitList(strings.Join(list, ","), f.color)))
	default:
		return false
	}
	return true
}
