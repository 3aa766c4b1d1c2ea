// Package shapeinference calculates the dimensions resulting from axis reordering operations
// (transposes) and validates its inputs.
//
// Axes can be given as negative values, counting from the end: -1 is the last axis.
package shapeinference

import (
	"slices"

	"github.com/gomlx/permutations"
	"github.com/pkg/errors"
)

// AdjustAxisToRank returns a positive axis, adjusting negative numbers to the correct rank.
func AdjustAxisToRank(axis, rank int) (int, error) {
	if axis < -rank || axis >= rank {
		return -1, errors.Errorf("axis %d is out of range for the rank %d", axis, rank)
	}
	if axis < 0 {
		axis += rank
	}
	return axis, nil
}

// AdjustAxesToRank returns a copy of axes with every negative axis converted to its positive equivalent.
func AdjustAxesToRank(axes []int, rank int) ([]int, error) {
	adjusted := slices.Clone(axes)
	for ii, axis := range axes {
		var err error
		adjusted[ii], err = AdjustAxisToRank(axis, rank)
		if err != nil {
			return nil, errors.WithMessagef(err, "axes %v", axes)
		}
	}
	return adjusted, nil
}

// TransposeDimensions returns the dimensions after transposing all axes.
// There must be one value in permutation for each axis (len(permutation) == len(dimensions)).
// The output will have: output[axis] = dimensions[permutation[axis]].
func TransposeDimensions(dimensions, permutation []int) ([]int, error) {
	rank := len(dimensions)
	if len(permutation) != rank {
		return nil, errors.Wrapf(permutations.ErrInvalidPermutation,
			"Transpose() requires all axes permutation to be defined, dimensions are %v, but %d axes were given",
			dimensions, len(permutation))
	}
	adjusted, err := AdjustAxesToRank(permutation, rank)
	if err != nil {
		return nil, errors.Wrapf(permutations.ErrInvalidPermutation, "Transpose(%v, %v): %v", dimensions, permutation, err)
	}
	output, err := permutations.Apply(adjusted, dimensions)
	if err != nil {
		return nil, errors.WithMessagef(err, "Transpose(%v, %v)", dimensions, permutation)
	}
	return output, nil
}

// InverseTransposeDimensions returns the dimensions before a transpose with the given permutation,
// so that TransposeDimensions(InverseTransposeDimensions(dims, p), p) returns dims.
func InverseTransposeDimensions(dimensions, permutation []int) ([]int, error) {
	rank := len(dimensions)
	adjusted, err := AdjustAxesToRank(permutation, rank)
	if err != nil {
		return nil, errors.Wrapf(permutations.ErrInvalidPermutation, "InverseTranspose(%v, %v): %v", dimensions, permutation, err)
	}
	inverse, err := permutations.InversePermutation(adjusted)
	if err != nil {
		return nil, errors.WithMessagef(err, "InverseTranspose(%v, %v)", dimensions, permutation)
	}
	return TransposeDimensions(dimensions, inverse)
}
