package arr

import (
	"math"
	"reflect"
)

// Equal reports whether a and b are equal.
//
// Types whose values can always be compared with == (numbers, strings,
// pointers, channels, and arrays/structs made only of those) use ==. Anything
// else, including slices, maps and interface types, falls back to
// [reflect.DeepEqual], so Equal never panics on uncomparable values.
//
// Two floating-point NaN elements are equal to each other.
func Equal[T any](a, b T) bool {
	if isNaN(a) && isNaN(b) {
		return true
	}
	if hashable(reflect.TypeFor[T]()) {
		return any(a) == any(b)
	}
	return reflect.DeepEqual(a, b)
}

// isNaN reports whether v is a float32 or float64 (or a type defined on
// them) holding NaN.
func isNaN(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(rv.Float())
	default:
		return false
	}
}

// hashable reports whether every value of t can be used with == and as a map
// key without a runtime panic. Interface types are excluded because their
// dynamic value may be uncomparable.
func hashable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Slice, reflect.Map, reflect.Func:
		return false
	case reflect.Array:
		return hashable(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !hashable(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return true
	}
}
