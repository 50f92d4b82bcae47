// Package arr provides standalone generic helpers for plain Go slices:
// searching, filtering, dense mapping, folding and equality-based removal
// and de-duplication.
//
// Every helper returns a new slice and leaves its input untouched:
//
//	evens := arr.Filter([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
//	rest  := arr.Without([]string{"a", "b", "a"}, "a") // → [b a]
//	once  := arr.Unique([]string{"a", "b", "a"})       // → [a b]
//
// # Equality
//
// Helpers that compare elements accept any element type. They use == where
// the type allows it and [reflect.DeepEqual] otherwise (see [Equal]), so
// slices of slices or maps can be searched and de-duplicated as well.
// Floating-point NaN elements count as equal to each other, so [Unique]
// keeps a single NaN and [Contains] finds one. NaN nested inside a struct,
// array or slice element still follows == / DeepEqual.
package arr
