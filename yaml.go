package uniquevec

import "gopkg.in/yaml.v3"

// MarshalYAML encodes the vec as a plain YAML sequence of its elements,
// mirroring the JSON framing. An empty vec encodes as [].
func (v *Vec[T]) MarshalYAML() (any, error) {
	if v.items == nil {
		return []T{}, nil
	}
	return v.items, nil
}

// UnmarshalYAML decodes a plain YAML sequence. Like UnmarshalJSON it
// trusts the input and runs no uniqueness check; Dedup re-establishes the
// guarantee for untrusted data.
func (v *Vec[T]) UnmarshalYAML(node *yaml.Node) error {
	var items []T
	if err := node.Decode(&items); err != nil {
		return err
	}
	v.items = items
	return nil
}

// UnmarshalYAML allocates the inner vec when the wrapper is zero and
// defers to its UnmarshalYAML.
func (s *StrictVec[T]) UnmarshalYAML(node *yaml.Node) error {
	if s.Vec == nil {
		s.Vec = New[T]()
	}
	return s.Vec.UnmarshalYAML(node)
}
