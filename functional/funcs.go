package functional

import (
	"slices"

	"github.com/hasbyte1/go-functional/arr"
)

// This file holds the operations that change a pipeline's type parameters.
// Go methods cannot declare their own type parameters, so these are
// package-level functions that still compose with method chains:
//
//	total, _ := functional.Map(functional.With("1", "2", "3"), parseInt).
//	    WithInitialValue(0).
//	    Reduce(add)

// Map applies expr to every element and returns a pipeline over the results.
// Elements for which expr reports no value are left out, so the result can
// be shorter than d.
func Map[E, R, S any](d *Do[E, R], expr MapExpression[E, S]) *Do[S, S] {
	return wrap[S, S](arr.FilterMap[E, S](d.elements, expr))
}

// MapTo records S as the target type of a following [Do.Collect] or
// reduce. Elements are copied unchanged and no accumulator is set.
//
//	functional.MapTo[*strings.Builder](functional.With("a", "b")).
//	    WithInitialValue(new(strings.Builder)).
//	    Reduce(functional.JoinReducer(", "))
func MapTo[S, E, R any](d *Do[E, R]) *Do[E, S] {
	return wrap[E, S](slices.Clone(d.elements))
}

// InitialValue is [Do.WithInitialValue] for a start value whose type differs
// from the pipeline's current accumulator type.
func InitialValue[S, E, R any](d *Do[E, R], start S) *Do[E, S] {
	return MapTo[S](d).WithInitialValue(start)
}

// TryMap applies fn to every element in order and stops at the first error,
// which is returned as is. On success it returns a pipeline over all results.
func TryMap[E, R, S any](d *Do[E, R], fn func(E) (S, error)) (*Do[S, S], error) {
	out := make([]S, 0, len(d.elements))
	for _, e := range d.elements {
		v, err := fn(e)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return wrap[S, S](out), nil
}

// ToSet returns the distinct elements of d as a set.
func ToSet[E comparable, R any](d *Do[E, R]) map[E]struct{} {
	set := make(map[E]struct{}, len(d.elements))
	for _, e := range d.elements {
		set[e] = struct{}{}
	}
	return set
}
