// Package uniquevec provides an insertion-ordered vector that rejects
// duplicate elements at insertion time.
//
// Vec keeps the first occurrence of every element and hands later
// occurrences back to the caller instead of raising errors. Membership is
// decided by ==, so for floating-point element types the relation is the
// IEEE one: NaN never equals anything, including itself, and a Vec may
// therefore hold any number of NaNs. StrictVec wraps a Vec for element
// types whose == is a full equivalence relation and additionally permits
// in-place element mutation.
//
// Neither type is safe for concurrent use. An instance is meant to have a
// single owner; sharing one across goroutines requires external locking
// around the whole container.
package uniquevec

import (
	"iter"
	"slices"
)

// Vec is an insertion-ordered sequence holding no two ==-equal elements.
//
// The zero value is an empty vec ready to use. Membership checks are
// linear scans, O(n) per insertion: a hash index would silently change
// which elements count as duplicates for types whose == is not
// hash-compatible, floating-point NaN being the usual offender.
type Vec[T comparable] struct {
	items []T
}

// New returns an empty vec.
func New[T comparable]() *Vec[T] {
	return &Vec[T]{}
}

// From consumes seq in order, keeping the first occurrence of every
// element. The second result holds the rejected elements in the order the
// rejections happened.
func From[T comparable](seq iter.Seq[T]) (*Vec[T], []T) {
	v := New[T]()
	return v, v.Extend(seq)
}

// FromSlice is From for a materialized slice. It does not retain items.
func FromSlice[T comparable](items []T) (*Vec[T], []T) {
	v := New[T]()
	return v, v.ExtendSlice(items)
}

// Push appends element unless an equal element is already present. On
// rejection it returns the offered element together with true and leaves
// the vec unchanged, so callers can recover a value that failed to insert
// without a separate membership check. On acceptance it returns the zero
// value of T and false.
func (v *Vec[T]) Push(element T) (T, bool) {
	if slices.Contains(v.items, element) {
		return element, true
	}
	v.items = append(v.items, element)
	var zero T
	return zero, false
}

// Extend pushes every element of seq in order and returns the rejected
// duplicates in encounter order. Elements accepted earlier in the same
// call already count as present, so Extend is observably equivalent to
// calling Push in a loop and collecting the rejects.
func (v *Vec[T]) Extend(seq iter.Seq[T]) []T {
	var duplicates []T
	for element := range seq {
		if rejected, ok := v.Push(element); ok {
			duplicates = append(duplicates, rejected)
		}
	}
	return duplicates
}

// ExtendSlice is Extend for a materialized slice.
func (v *Vec[T]) ExtendSlice(items []T) []T {
	return v.Extend(slices.Values(items))
}

// Append pushes every item in order, silently dropping duplicates.
// Callers that need the duplicates back use Extend or ExtendSlice.
func (v *Vec[T]) Append(items ...T) {
	v.ExtendSlice(items)
}

// Clear removes all elements, keeping the allocated capacity.
func (v *Vec[T]) Clear() {
	clear(v.items)
	v.items = v.items[:0]
}

// Pop removes and returns the last element. The second result is false if
// the vec is empty. Removal cannot introduce duplicates, so no check runs.
func (v *Vec[T]) Pop() (T, bool) {
	var zero T
	if len(v.items) == 0 {
		return zero, false
	}
	last := v.items[len(v.items)-1]
	v.items[len(v.items)-1] = zero // drop the reference
	v.items = v.items[:len(v.items)-1]
	return last, true
}

// Len reports the number of elements.
func (v *Vec[T]) Len() int {
	return len(v.items)
}

// At returns the element at position i. It panics if i is out of range,
// with the usual slice bounds error.
func (v *Vec[T]) At(i int) T {
	return v.items[i]
}

// Contains reports whether an element equal to element is present.
func (v *Vec[T]) Contains(element T) bool {
	return slices.Contains(v.items, element)
}

// Values iterates the elements in insertion order.
func (v *Vec[T]) Values() iter.Seq[T] {
	return slices.Values(v.items)
}

// All iterates index/element pairs in insertion order.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return slices.All(v.items)
}

// Slice returns a copy of the elements in insertion order. Mutating the
// copy cannot affect the vec.
func (v *Vec[T]) Slice() []T {
	return slices.Clone(v.items)
}

// Dedup re-establishes uniqueness in place, keeping first occurrences,
// and returns the removed duplicates in encounter order. On a vec whose
// guarantee already holds it removes nothing, which is every vec not
// produced by deserializing untrusted input (see UnmarshalJSON).
func (v *Vec[T]) Dedup() []T {
	items := v.items
	v.items = v.items[:0]
	var duplicates []T
	for _, element := range items {
		if rejected, ok := v.Push(element); ok {
			duplicates = append(duplicates, rejected)
		}
	}
	clear(items[len(v.items):])
	return duplicates
}
