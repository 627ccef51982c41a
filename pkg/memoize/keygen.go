// Package memoize provides cache key generation from call arguments
package memoize

import (
	"fmt"
	"reflect"
	"strings"
)

// Key derives a cache key fragment from the arguments by concatenating a
// lossy string form of each one. Structs (and pointers to structs) render
// as a mapping of their exported fields; everything else uses its %v form.
// Distinct arguments that stringify identically share a key; that is an
// accepted limitation of this scheme, not a defect the cache guards
// against.
func Key(args ...any) string {
	var b strings.Builder
	for _, arg := range args {
		b.WriteString(argKey(arg))
	}
	return b.String()
}

// argKey converts a single argument to its key fragment
func argKey(arg any) string {
	if arg == nil {
		return "<nil>"
	}

	v := reflect.ValueOf(arg)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return "<nil>"
		}
		v = v.Elem()
	}

	if v.Kind() == reflect.Struct {
		return fieldMap(v)
	}
	return fmt.Sprint(v.Interface())
}

// fieldMap renders a struct as the string form of its exported-field
// mapping. Go prints maps with sorted keys, so the result is
// deterministic.
func fieldMap(v reflect.Value) string {
	t := v.Type()
	fields := make(map[string]any, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		fields[field.Name] = v.Field(i).Interface()
	}
	return fmt.Sprint(fields)
}
