package permutations

import (
	"testing"

	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type axis int32

func TestIdentity(t *testing.T) {
	assert.Equal(t, []int{}, Identity[int](0))
	assert.Equal(t, []int{}, Identity[int](-3))
	assert.Equal(t, []axis{0, 1, 2}, Identity[axis](3))
}

func TestApply(t *testing.T) {
	values := []string{"a", "b", "c"}
	require.Equal(t, []string{"c", "a", "b"}, must.M1(Apply([]int{2, 0, 1}, values)))
	require.Equal(t, []string{"a", "b", "c"}, values)

	identical := must.M1(Apply(Identity[int](3), values))
	require.Equal(t, values, identical)
	identical[0] = "x"
	require.Equal(t, "a", values[0], "Apply must return a new slice")

	empty := must.M1(Apply([]int{}, []float32{}))
	require.Empty(t, empty)

	_, err := Apply([]int{0, 1}, values)
	require.ErrorIs(t, err, ErrInvalidPermutation)
	_, err = Apply([]int{0, 0, 1}, values)
	require.ErrorIs(t, err, ErrInvalidPermutation)

	// Applying the inverse undoes the permutation.
	p := []int{3, 0, 2, 1}
	dims := []int{7, 11, 13, 17}
	transposed := must.M1(Apply(p, dims))
	require.Equal(t, []int{17, 7, 13, 11}, transposed)
	require.Equal(t, dims, must.M1(Apply(must.M1(InversePermutation(p)), transposed)))
}

func TestCompose(t *testing.T) {
	values := []string{"a", "b", "c", "d"}
	first := []int{1, 2, 3, 0}
	second := []int{3, 1, 0, 2}
	composed := must.M1(Compose(first, second))
	require.Equal(t, []int{0, 2, 1, 3}, composed)
	require.Equal(t,
		must.M1(Apply(second, must.M1(Apply(first, values)))),
		must.M1(Apply(composed, values)))

	for _, p := range allPermutations(4) {
		q := must.M1(InversePermutation(p))
		require.True(t, IsIdentityPermutation(must.M1(Compose(p, q))))
		require.True(t, IsIdentityPermutation(must.M1(Compose(q, p))))
	}

	_, err := Compose([]int{0, 1}, []int{0})
	require.ErrorIs(t, err, ErrInvalidPermutation)
	_, err = Compose([]int{0, 0}, []int{0, 1})
	require.ErrorIs(t, err, ErrInvalidPermutation)
	_, err = Compose([]int{0, 1}, []int{2, 1})
	require.ErrorIs(t, err, ErrInvalidPermutation)
}

func TestToStableHLO(t *testing.T) {
	assert.Equal(t, "array<i64: 2, 0, 1>", ToStableHLO([]int64{2, 0, 1}))
	assert.Equal(t, "array<i32: 1, 0>", ToStableHLO([]axis{1, 0}))
	assert.Equal(t, "array<i8: 0>", ToStableHLO([]int8{0}))
	assert.Equal(t, "array<i64>", ToStableHLO([]int64{}))
}
