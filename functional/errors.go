package functional

import "errors"

// Sentinel errors returned by pipeline operations.
//
// Use [errors.Is] for comparisons:
//
//	total, err := functional.With(1, 2, 3).Reduce(add)
//	if errors.Is(err, functional.ErrMissingSeed) {
//	    // call WithInitialValue first
//	}
var (
	// ErrMissingSeed is returned by [Do.Reduce] when no starting value was
	// set with [Do.WithInitialValue] or [InitialValue].
	ErrMissingSeed = errors.New("functional: must set starting value before reducing")
)
