package arr

import "reflect"

// ─────────────────────────────────────────────────────────────────────────────
// Searching & testing
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element for which fn returns true.
// Returns the zero value and false when items is empty or no element matches.
func First[T any](items []T, fn func(T) bool) (T, bool) {
	for _, item := range items {
		if fn(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// IndexOf returns the index of the first element equal to value, or -1.
// Equality follows [Equal].
func IndexOf[T any](items []T, value T) int {
	for i, item := range items {
		if Equal(item, value) {
			return i
		}
	}
	return -1
}

// Contains reports whether items holds an element equal to value.
func Contains[T any](items []T, value T) bool {
	return IndexOf(items, value) >= 0
}

// ContainsAll reports whether every one of values is present in items.
// It returns true when values is empty.
func ContainsAll[T any](items []T, values ...T) bool {
	for _, v := range values {
		if !Contains(items, v) {
			return false
		}
	}
	return true
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering & mapping
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns the elements for which fn returns true, in their original
// order.
func Filter[T any](items []T, fn func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if fn(item) {
			out = append(out, item)
		}
	}
	return out
}

// Reject returns the elements for which fn returns false.
// It is the complement of [Filter].
func Reject[T any](items []T, fn func(T) bool) []T {
	return Filter(items, func(item T) bool { return !fn(item) })
}

// FilterMap applies fn to every element and keeps the results for which fn
// reported ok. The output is dense: skipped elements leave no gap.
//
//	n := arr.FilterMap([]string{"1", "x", "3"}, func(s string) (int, bool) {
//	    v, err := strconv.Atoi(s)
//	    return v, err == nil
//	}) // → [1 3]
func FilterMap[T, U any](items []T, fn func(T) (U, bool)) []U {
	out := make([]U, 0, len(items))
	for _, item := range items {
		if v, ok := fn(item); ok {
			out = append(out, v)
		}
	}
	return out
}

// Fold reduces items from left to right, starting from initial.
func Fold[T, U any](items []T, initial U, fn func(U, T) U) U {
	acc := initial
	for _, item := range items {
		acc = fn(acc, item)
	}
	return acc
}

// ─────────────────────────────────────────────────────────────────────────────
// Removal & set algebra
// ─────────────────────────────────────────────────────────────────────────────

// Without returns a copy of items where, for each of values, the first
// remaining element equal to it has been removed. Further equal elements stay:
//
//	arr.Without([]string{"a", "b", "a"}, "a") // → [b a]
//	arr.Without([]string{"a", "b", "a"}, "a", "a") // → [b]
func Without[T any](items []T, values ...T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for _, v := range values {
		if i := IndexOf(out, v); i >= 0 {
			out = append(out[:i], out[i+1:]...)
		}
	}
	return out
}

// Diff returns the elements of items not equal to any of values.
// Unlike [Without] every occurrence is dropped.
func Diff[T any](items []T, values ...T) []T {
	return Reject(items, func(item T) bool { return Contains(values, item) })
}

// Intersect returns the elements of items equal to one of values, keeping
// duplicates and order from items.
func Intersect[T any](items []T, values ...T) []T {
	return Filter(items, func(item T) bool { return Contains(values, item) })
}

// Unique returns the distinct elements of items, keeping the first occurrence
// of each in its original position.
//
// Element types usable as map keys are de-duplicated in a single pass; others
// are compared pairwise with [Equal].
func Unique[T any](items []T) []T {
	out := make([]T, 0, len(items))
	if t := reflect.TypeFor[T](); hashable(t) {
		floats := t.Kind() == reflect.Float32 || t.Kind() == reflect.Float64
		seen := make(map[any]struct{}, len(items))
		sawNaN := false
		for _, item := range items {
			// NaN map keys never match, so NaN is tracked on its own.
			if floats && isNaN(item) {
				if !sawNaN {
					sawNaN = true
					out = append(out, item)
				}
				continue
			}
			if _, ok := seen[item]; ok {
				continue
			}
			seen[item] = struct{}{}
			out = append(out, item)
		}
		return out
	}
	for _, item := range items {
		if !Contains(out, item) {
			out = append(out, item)
		}
	}
	return out
}
