// SPDX-License-Identifier: MIT
package params

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("query"), ",")
		return name
	})
	return v
}

// MustRegisterValidation adds a custom `validate` tag used by Sanitize. It
// panics if the tag cannot be registered.
func MustRegisterValidation(tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Sanitize checks dst against its `validate` tags and resets every failing
// field to the matching field of defaults. It returns the query keys that
// were reset.
func Sanitize(dst, defaults any) []string {
	rv, err := settable(dst)
	if err != nil {
		return nil
	}
	dv, ok := structValue(defaults)
	if !ok || dv.Type() != rv.Type() {
		return nil
	}

	err = validate.Struct(dst)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	var reset []string
	for _, fe := range verrs {
		path := fieldPath(fe.StructNamespace())
		target := byPath(rv, path)
		def := byPath(dv, path)
		if !target.IsValid() || !def.IsValid() || !target.CanSet() {
			continue
		}
		target.Set(def)
		if !containsKey(reset, fe.Field()) {
			reset = append(reset, stripIndex(fe.Field()))
		}
	}
	return reset
}

// fieldPath turns "TextParams.Brand.Colors[2]" into [Brand Colors].
func fieldPath(ns string) []string {
	parts := strings.Split(ns, ".")
	if len(parts) > 0 {
		parts = parts[1:]
	}
	for i, p := range parts {
		parts[i] = stripIndex(p)
	}
	return parts
}

func stripIndex(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}

func byPath(v reflect.Value, path []string) reflect.Value {
	for _, name := range path {
		if v.Kind() != reflect.Struct {
			return reflect.Value{}
		}
		v = v.FieldByName(name)
		if !v.IsValid() {
			return v
		}
	}
	return v
}

func containsKey(keys []string, k string) bool {
	k = stripIndex(k)
	for _, existing := range keys {
		if existing == k {
			return true
		}
	}
	return false
}
