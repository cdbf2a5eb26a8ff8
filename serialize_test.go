package uniquevec

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMarshalJSON(t *testing.T) {
	v, _ := FromSlice([]int{3, 1, 19})

	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.JSONEq(t, `[3,1,19]`, string(data))

	// on the wire the vec is indistinguishable from the plain slice
	plain, err := json.Marshal(v.Slice())
	require.NoError(t, err)
	require.JSONEq(t, string(plain), string(data))
}

func TestMarshalJSONEmpty(t *testing.T) {
	data, err := json.Marshal(New[int]())
	require.NoError(t, err)
	require.Equal(t, `[]`, string(data))

	var zero Vec[int]
	data, err = json.Marshal(&zero)
	require.NoError(t, err)
	require.Equal(t, `[]`, string(data))
}

func TestUnmarshalJSON(t *testing.T) {
	var v Vec[string]
	require.NoError(t, json.Unmarshal([]byte(`["a","b","c"]`), &v))
	require.Equal(t, []string{"a", "b", "c"}, v.Slice())
}

func TestUnmarshalJSONTrustsInput(t *testing.T) {
	// decoding runs no uniqueness check; Dedup is the escape hatch
	var v Vec[int]
	require.NoError(t, json.Unmarshal([]byte(`[1,2,1]`), &v))
	require.Equal(t, []int{1, 2, 1}, v.Slice())

	require.Equal(t, []int{1}, v.Dedup())
	require.Equal(t, []int{1, 2}, v.Slice())
}

func TestJSONRoundTrip(t *testing.T) {
	v, _ := FromSlice([]int{1, 33, 2, 0, 4, 56})

	data, err := json.Marshal(v)
	require.NoError(t, err)

	var w Vec[int]
	require.NoError(t, json.Unmarshal(data, &w))
	require.Equal(t, v.Slice(), w.Slice())
}

func TestStrictJSON(t *testing.T) {
	s, _ := StrictFromSlice([]int{1, 2})

	data, err := json.Marshal(s)
	require.NoError(t, err)
	require.JSONEq(t, `[1,2]`, string(data))

	var w StrictVec[int]
	require.NoError(t, json.Unmarshal(data, &w))
	require.Equal(t, []int{1, 2}, w.Slice())
}

func TestMarshalYAML(t *testing.T) {
	v, _ := FromSlice([]string{"a", "b"})

	data, err := yaml.Marshal(v)
	require.NoError(t, err)
	require.YAMLEq(t, "- a\n- b\n", string(data))

	data, err = yaml.Marshal(New[string]())
	require.NoError(t, err)
	require.YAMLEq(t, "[]\n", string(data))
}

func TestYAMLRoundTrip(t *testing.T) {
	v, _ := FromSlice([]int{3, 1, 19})

	data, err := yaml.Marshal(v)
	require.NoError(t, err)

	var w Vec[int]
	require.NoError(t, yaml.Unmarshal(data, &w))
	require.Equal(t, v.Slice(), w.Slice())
}

func TestYAMLTrustsInput(t *testing.T) {
	var v Vec[int]
	require.NoError(t, yaml.Unmarshal([]byte("- 1\n- 1\n"), &v))
	require.Equal(t, []int{1, 1}, v.Slice())
	require.Equal(t, []int{1}, v.Dedup())
}

func TestStrictYAML(t *testing.T) {
	var s StrictVec[string]
	require.NoError(t, yaml.Unmarshal([]byte("- x\n- y\n"), &s))
	require.Equal(t, []string{"x", "y"}, s.Slice())

	data, err := yaml.Marshal(s)
	require.NoError(t, err)
	require.YAMLEq(t, "- x\n- y\n", string(data))
}
