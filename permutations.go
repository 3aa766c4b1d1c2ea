// Package permutations validates, inverts, composes and applies permutations of axes (or any
// other index sequence), as used by transposes and layout changes of multi-dimensional arrays.
//
// A permutation of length n is a slice holding each value of [0, n) exactly once.
//
// Permutations are destination-indexed, as in the StableHLO `transpose` operation: position i
// of the permuted result takes the element found at position permutation[i] of the source.
// So Apply([]int{2, 0, 1}, []string{"a", "b", "c"}) returns ["c", "a", "b"].
//
// None of the functions change their inputs, and returned slices are always newly allocated.
package permutations

import (
	"github.com/gomlx/permutations/internal/utils"
	"github.com/pkg/errors"
)

// Integer is the constraint for the values of a permutation.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// ErrInvalidPermutation is wrapped by every error caused by a sequence that is not a valid permutation,
// so callers can check for it with errors.Is.
var ErrInvalidPermutation = errors.New("invalid permutation")

// Validate returns nil if permutation holds each value in [0, len(permutation)) exactly once.
// Otherwise, it returns an error wrapping ErrInvalidPermutation that describes the first offending value.
func Validate[T Integer](permutation []T) error {
	n := int64(len(permutation))
	seen := utils.MakeSet[T](len(permutation))
	for ii, value := range permutation {
		if value < 0 || int64(value) >= n {
			return errors.Wrapf(ErrInvalidPermutation, "value %d at position %d is out of the range [0, %d) in %v",
				value, ii, n, permutation)
		}
		if seen.Has(value) {
			return errors.Wrapf(ErrInvalidPermutation, "value %d at position %d is repeated in %v, each value must appear exactly once",
				value, ii, permutation)
		}
		seen.Insert(value)
	}
	return nil
}

// IsPermutation returns whether permutation is a bijection on [0, len(permutation)).
// The empty sequence is a valid permutation.
func IsPermutation[T Integer](permutation []T) bool {
	return Validate(permutation) == nil
}

// IsIdentityPermutation returns whether permutation[i] == i for every position i.
//
// It doesn't check that permutation is valid, it's only a positional comparison. Still, any
// sequence for which it returns true is also the valid identity permutation.
func IsIdentityPermutation[T Integer](permutation []T) bool {
	for ii, value := range permutation {
		if int64(value) != int64(ii) {
			return false
		}
	}
	return true
}

// InversePermutation returns the permutation q such that q[permutation[i]] == i for every i.
// Applying permutation and then q (or in the opposite order) leaves a sequence unchanged.
//
// The input is always validated: if it is not a permutation an error wrapping ErrInvalidPermutation
// is returned.
func InversePermutation[T Integer](permutation []T) ([]T, error) {
	if err := Validate(permutation); err != nil {
		return nil, errors.WithMessage(err, "InversePermutation()")
	}
	inverse := make([]T, len(permutation))
	for ii, value := range permutation {
		inverse[value] = T(ii)
	}
	return inverse, nil
}
