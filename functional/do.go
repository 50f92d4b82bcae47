package functional

import (
	"encoding/json"
	"fmt"
	"iter"
	"slices"

	"github.com/rs/zerolog"

	"github.com/hasbyte1/go-functional/arr"
)

// Do wraps a sequence of elements of type E together with an optional
// accumulator of type R used by [Do.Reduce].
//
// Transformation methods (Select, Reject, RejectElement, InjectElement,
// Unique, Collect, …) return a *new* Do over a freshly built slice and never
// touch the receiver. The pass-through collection methods (Add, Remove,
// Clear, …) follow the usual mutable-collection contract and change the
// receiver in place, so a Do must not be treated as immutable. Every
// constructor copies its input, so those methods change the pipeline's own
// elements and never the caller's slice.
//
// # Creating a pipeline
//
//	d := functional.With("a", "b", "c")
//	d := functional.WithSlice(names)
//	d := functional.WithSeq(maps.Keys(index))
//
// # Reducing
//
// A reduce needs an explicit starting value:
//
//	sum, err := functional.With(1, 2, 3).
//	    WithInitialValue(0).
//	    Reduce(func(acc, n int) int { return acc + n }) // 6, nil
//
// # Changing types
//
// Methods cannot introduce type parameters, so operations that change E or R
// are package-level functions: [Map], [MapTo], [TryMap], [InitialValue].
type Do[E, R any] struct {
	elements []E

	// accumulator is only meaningful when seeded is true. A zero or nil
	// accumulator is a legitimate seed.
	accumulator R
	seeded      bool
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// With starts a pipeline over a variadic list of elements (copied).
func With[E any](elements ...E) *Do[E, E] {
	return WithSlice(elements)
}

// WithSlice starts a pipeline over an existing slice. The slice is copied,
// order preserved.
func WithSlice[E any](elements []E) *Do[E, E] {
	return wrap[E, E](slices.Clone(elements))
}

// WithSeq starts a pipeline over the values produced by seq.
func WithSeq[E any](seq iter.Seq[E]) *Do[E, E] {
	return wrap[E, E](slices.Collect(seq))
}

// wrap takes ownership of elements.
func wrap[E, R any](elements []E) *Do[E, R] {
	if elements == nil {
		elements = []E{}
	}
	return &Do[E, R]{elements: elements}
}

// ─────────────────────────────────────────────────────────────────────────────
// Mapping & filtering
// ─────────────────────────────────────────────────────────────────────────────

// Collect maps every element to the target type recorded by [MapTo].
// Elements for which expr reports no value are skipped.
//
//	ints := functional.MapTo[int](functional.With("1", "2")).Collect(parseInt)
func (d *Do[E, R]) Collect(expr MapExpression[E, R]) *Do[R, R] {
	return wrap[R, R](arr.FilterMap[E, R](d.elements, expr))
}

// Select returns a new pipeline with the elements matching expr, in order.
func (d *Do[E, R]) Select(expr BooleanExpression[E]) *Do[E, E] {
	return wrap[E, E](arr.Filter(d.elements, expr))
}

// Reject returns a new pipeline without the elements matching expr.
// It is the complement of [Do.Select].
func (d *Do[E, R]) Reject(expr BooleanExpression[E]) *Do[E, E] {
	return wrap[E, E](arr.Reject(d.elements, expr))
}

// Detect returns the first element matching expr.
// Returns the zero value and false when nothing matches.
func (d *Do[E, R]) Detect(expr BooleanExpression[E]) (E, bool) {
	return arr.First(d.elements, expr)
}

// RejectElement returns a new pipeline where, for each argument, the first
// equal element has been removed. Later duplicates stay; call [Do.Unique]
// first to drop every occurrence.
func (d *Do[E, R]) RejectElement(elements ...E) *Do[E, E] {
	return wrap[E, E](arr.Without(d.elements, elements...))
}

// InjectElement returns a new pipeline with elements appended.
func (d *Do[E, R]) InjectElement(elements ...E) *Do[E, E] {
	out := make([]E, 0, len(d.elements)+len(elements))
	out = append(out, d.elements...)
	out = append(out, elements...)
	return wrap[E, E](out)
}

// Unique returns a new pipeline with duplicate elements removed.
// The first occurrence of each distinct element is kept.
func (d *Do[E, R]) Unique() *Do[E, E] {
	return wrap[E, E](arr.Unique(d.elements))
}

// RemoveDuplicates is an alias for [Do.Unique].
func (d *Do[E, R]) RemoveDuplicates() *Do[E, E] { return d.Unique() }

// ─────────────────────────────────────────────────────────────────────────────
// Reducing
// ─────────────────────────────────────────────────────────────────────────────

// WithInitialValue returns a new pipeline over the same elements whose
// accumulator is set to start. Use [InitialValue] to change the accumulator
// type at the same time.
func (d *Do[E, R]) WithInitialValue(start R) *Do[E, R] {
	out := wrap[E, R](slices.Clone(d.elements))
	out.accumulator, out.seeded = start, true
	return out
}

// Reduce folds the elements from left to right into the accumulator and
// returns the result, which also becomes the pipeline's new accumulator.
//
// Returns [ErrMissingSeed] if no starting value was set.
func (d *Do[E, R]) Reduce(expr ReduceExpression[E, R]) (R, error) {
	if !d.seeded {
		var zero R
		return zero, ErrMissingSeed
	}
	d.accumulator = arr.Fold(d.elements, d.accumulator, expr)
	return d.accumulator, nil
}

// MustReduce is like [Do.Reduce] but panics if no starting value was set.
func (d *Do[E, R]) MustReduce(expr ReduceExpression[E, R]) R {
	result, err := d.Reduce(expr)
	if err != nil {
		panic(err)
	}
	return result
}

// Accumulator returns the current accumulator and whether one has been set.
func (d *Do[E, R]) Accumulator() (R, bool) {
	return d.accumulator, d.seeded
}

// ─────────────────────────────────────────────────────────────────────────────
// Chain connectors
// ─────────────────────────────────────────────────────────────────────────────

// And returns d unchanged. It only exists to make chains read naturally.
func (d *Do[E, R]) And() *Do[E, R] { return d }

// Then returns d unchanged.
func (d *Do[E, R]) Then() *Do[E, R] { return d }

// Trace writes a debug event describing the pipeline to logger and returns d
// for further chaining.
//
//	functional.With(3, 1, 2).Trace(log.Logger, "input").Unique()
func (d *Do[E, R]) Trace(logger zerolog.Logger, msg string) *Do[E, R] {
	logger.Debug().
		Int("size", len(d.elements)).
		Bool("seeded", d.seeded).
		Interface("elements", d.elements).
		Msg(msg)
	return d
}

// ─────────────────────────────────────────────────────────────────────────────
// Materialisation
// ─────────────────────────────────────────────────────────────────────────────

// ToList returns a copy of the elements.
func (d *Do[E, R]) ToList() []E { return slices.Clone(d.elements) }

// MarshalJSON encodes the elements as a JSON array.
func (d *Do[E, R]) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.elements)
}

// String returns a JSON representation of the elements.
// It implements [fmt.Stringer].
func (d *Do[E, R]) String() string {
	b, err := d.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%v", d.elements)
	}
	return string(b)
}
