package uniquevec

import "encoding/json"

// MarshalJSON encodes the vec as a plain JSON array of its elements, with
// no extra framing: the output is indistinguishable from marshaling the
// equivalent []T. An empty vec encodes as [], never null.
func (v *Vec[T]) MarshalJSON() ([]byte, error) {
	if v.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(v.items)
}

// UnmarshalJSON decodes a plain JSON array. The elements are trusted as
// already unique: no check runs afterwards, so an input array carrying
// duplicates produces a vec that violates the usual guarantee until the
// caller runs Dedup. This keeps decoding linear and matches the framing
// of MarshalJSON exactly.
func (v *Vec[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	v.items = items
	return nil
}

// UnmarshalJSON allocates the inner vec when the wrapper is zero and
// defers to its UnmarshalJSON, trusting the input the same way.
func (s *StrictVec[T]) UnmarshalJSON(data []byte) error {
	if s.Vec == nil {
		s.Vec = New[T]()
	}
	return s.Vec.UnmarshalJSON(data)
}
