package uniquevec

// StrictVec wraps a Vec for element types whose == is a full equivalence
// relation: reflexive, symmetric and transitive. That rules out
// floating-point element types and structs containing them, where NaN
// breaks reflexivity. The stronger relation is what justifies the one
// capability StrictVec adds over Vec: mutable access to stored elements
// through MutableAt. The requirement is a documented precondition, not an
// enforced one: nothing stops a caller from mutating an element into a
// copy of another, and Dedup repairs the damage if that happens.
//
// Every other operation is promoted from the embedded Vec.
type StrictVec[T comparable] struct {
	*Vec[T]
}

// Strict wraps v without copying or re-checking its elements. Both
// handles share storage, so the caller should treat v as moved into the
// wrapper.
func Strict[T comparable](v *Vec[T]) StrictVec[T] {
	return StrictVec[T]{Vec: v}
}

// NewStrict returns a StrictVec around a fresh empty vec.
func NewStrict[T comparable]() StrictVec[T] {
	return Strict(New[T]())
}

// StrictFromSlice builds a StrictVec from items, returning the rejected
// duplicates like FromSlice does.
func StrictFromSlice[T comparable](items []T) (StrictVec[T], []T) {
	v, rest := FromSlice(items)
	return Strict(v), rest
}

// Unwrap hands the inner vec back. Like Strict this costs nothing; the
// wrapper should be dropped afterwards.
func (s StrictVec[T]) Unwrap() *Vec[T] {
	return s.Vec
}

// MutableAt returns a pointer to the element at position i, valid until
// the next inserting operation grows the storage. It panics if i is out
// of range.
func (s StrictVec[T]) MutableAt(i int) *T {
	return &s.Vec.items[i]
}
