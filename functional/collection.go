package functional

import (
	"iter"
	"slices"

	"github.com/hasbyte1/go-functional/arr"
)

// Collection is the mutable-collection contract satisfied by [Do].
//
// Accept Collection in your own functions when they only need to add,
// remove or inspect elements and should not depend on the concrete *Do
// type. Element equality follows [arr.Equal].
type Collection[E any] interface {
	// Add appends e and reports whether the collection changed (always true).
	Add(e E) bool

	// AddAll appends every element and reports whether any was added.
	AddAll(elements ...E) bool

	// Clear removes every element.
	Clear()

	// Contains reports whether an element equal to e is present.
	Contains(e E) bool

	// ContainsAll reports whether every given element is present.
	ContainsAll(elements ...E) bool

	// IsEmpty reports whether the collection holds no elements.
	IsEmpty() bool

	// All iterates over the elements in order.
	All() iter.Seq[E]

	// Remove deletes the first element equal to e and reports whether one
	// was found.
	Remove(e E) bool

	// RemoveAll deletes every element equal to one of elements and reports
	// whether the collection changed.
	RemoveAll(elements ...E) bool

	// RetainAll keeps only elements equal to one of elements and reports
	// whether the collection changed.
	RetainAll(elements ...E) bool

	// Size returns the number of elements.
	Size() int

	// ToArray returns a copy of the elements as a plain slice.
	ToArray() []E
}

var _ Collection[string] = (*Do[string, string])(nil)

// The methods below mutate the receiver in place.

func (d *Do[E, R]) Add(e E) bool {
	d.elements = append(d.elements, e)
	return true
}

func (d *Do[E, R]) AddAll(elements ...E) bool {
	d.elements = append(d.elements, elements...)
	return len(elements) > 0
}

func (d *Do[E, R]) Clear() {
	clear(d.elements)
	d.elements = d.elements[:0]
}

func (d *Do[E, R]) Contains(e E) bool { return arr.Contains(d.elements, e) }

func (d *Do[E, R]) ContainsAll(elements ...E) bool {
	return arr.ContainsAll(d.elements, elements...)
}

func (d *Do[E, R]) IsEmpty() bool { return len(d.elements) == 0 }

func (d *Do[E, R]) All() iter.Seq[E] { return slices.Values(d.elements) }

// Each calls fn for every element in order.
func (d *Do[E, R]) Each(fn func(E)) {
	for _, e := range d.elements {
		fn(e)
	}
}

func (d *Do[E, R]) Remove(e E) bool {
	i := arr.IndexOf(d.elements, e)
	if i < 0 {
		return false
	}
	d.elements = slices.Delete(d.elements, i, i+1)
	return true
}

func (d *Do[E, R]) RemoveAll(elements ...E) bool {
	before := len(d.elements)
	d.elements = arr.Diff(d.elements, elements...)
	return len(d.elements) != before
}

func (d *Do[E, R]) RetainAll(elements ...E) bool {
	before := len(d.elements)
	d.elements = arr.Intersect(d.elements, elements...)
	return len(d.elements) != before
}

func (d *Do[E, R]) Size() int { return len(d.elements) }

func (d *Do[E, R]) ToArray() []E { return slices.Clone(d.elements) }
