package rhttp

import (
	"reflect"

	"github.com/cockroachdb/errors"
)

// Normalizer is the capability implemented by framework-specific aggregates
// (an ORM-loaded entity, a tabular result set) that know how to flatten
// themselves into plain data before rendering.
type Normalizer interface {
	NormalizePlain() any
}

// normalizePlain passes plain data through and flattens recognized foreign
// aggregates. Plain data is the closed set of nested maps, sequences and
// scalars; anything else without the [Normalizer] capability is a caller bug
// and surfaces as an error rather than a crash.
func normalizePlain(v any) (any, error) {
	if v == nil {
		return nil, nil
	}

	if n, ok := v.(Normalizer); ok {
		return normalizePlain(n.NormalizePlain())
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, nil
		}

		return normalizePlain(rv.Elem().Interface())
	}

	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array,
		reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return v, nil
	default:
		return nil, errors.Newf("cannot normalize %T into plain data", v)
	}
}

// isEmptyValue reports whether a parsed body holds nothing: nil, an empty
// string, or an empty container.
func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.String:
		return rv.Len() == 0
	default:
		return false
	}
}
