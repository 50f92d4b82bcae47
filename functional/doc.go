// Package functional chains map, filter, de-duplicate and reduce operations
// over an in-memory collection through a fluent entry point.
//
// # Overview
//
// The central type is [Do][E, R]: a wrapper around a slice of E plus an
// optional accumulator of type R. Most operations return a new Do, so calls
// read as a pipeline:
//
//	isB := func(s string) bool { return strings.EqualFold(s, "B") }
//
//	functional.With("a", "b", "c").Select(isB).ToList() // → [b]
//	functional.With("a", "b", "c").Reject(isB).ToList() // → [a c]
//	functional.With("a", "b", "c").Detect(isB)           // → "b", true
//
// # Mapping
//
// A [MapExpression] returns a value and an ok flag. Elements whose mapping
// reports !ok are dropped, so the output is always dense:
//
//	parseInt := func(s string) (int, bool) {
//	    n, err := strconv.Atoi(s)
//	    return n, err == nil
//	}
//	functional.Map(functional.With("1", "x", "3"), parseInt).ToList() // → [1 3]
//
// The same can be written by recording the target type first:
//
//	functional.MapTo[int](functional.With("1", "2", "3")).Collect(parseInt)
//
// # Reducing
//
// Reduce is a left fold that needs an explicit start value. Calling it on a
// pipeline that was never seeded returns [ErrMissingSeed]:
//
//	sum, err := functional.Map(functional.With("1", "2", "3"), parseInt).
//	    And().Then().
//	    WithInitialValue(0).
//	    Reduce(func(acc, n int) int { return acc + n }) // 6, nil
//
// A seed of zero or nil is a valid seed; the pipeline tracks whether a
// start value was set separately from the value itself.
//
// # Mutation
//
// The transformation methods never change their receiver. The collection
// methods of [Collection] (Add, Remove, RetainAll, …) do, in place, and
// [Do.Reduce] stores its result as the new accumulator.
//
// # Concurrency
//
// A Do is not safe for concurrent use when any of those mutating methods
// is involved.
package functional
