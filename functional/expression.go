package functional

// MapExpression transforms an element. Returning false means the element has
// no mapped value; map operations skip it instead of keeping a placeholder.
type MapExpression[I, O any] func(element I) (O, bool)

// BooleanExpression is a predicate over a single element.
type BooleanExpression[E any] func(element E) bool

// ReduceExpression folds one element into the accumulated value and returns
// the new accumulated value.
type ReduceExpression[E, R any] func(accumulated R, element E) R

// Lift adapts a function that always produces a value into a MapExpression
// that never skips.
//
//	upper := functional.Lift(strings.ToUpper)
func Lift[I, O any](fn func(I) O) MapExpression[I, O] {
	return func(element I) (O, bool) { return fn(element), true }
}
