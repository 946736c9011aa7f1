package rop

import (
	"math"
	"reflect"
)

// IsNil reports whether i is nil or holds a nil pointer, map, slice, func, chan or interface.
func IsNil(i any) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan,
		reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// IsNullish reports whether v is nil (see IsNil) or a floating point NaN.
// Zero values such as 0, false and "" are not nullish.
func IsNullish(v any) bool {
	if IsNil(v) {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(rv.Float())
	}
	return false
}

// AreNullish reports whether every value is nullish. It is true for no values.
func AreNullish(values ...any) bool {
	for _, v := range values {
		if !IsNullish(v) {
			return false
		}
	}
	return true
}

// Coalesce returns the first value that is not nullish, or nil.
func Coalesce(values ...any) any {
	for _, v := range values {
		if !IsNullish(v) {
			return v
		}
	}
	return nil
}

// Plural picks the plural or singular suffix for n.
func Plural(n int, plural, singular string) string {
	if n == 1 {
		return singular
	}
	return plural
}
