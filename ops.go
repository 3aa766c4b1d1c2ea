package permutations

import (
	"fmt"
	"strings"

	"github.com/gomlx/permutations/internal/utils"
	"github.com/pkg/errors"
)

// Identity returns the identity permutation 0, 1, ..., n-1. It returns an empty slice if n <= 0.
func Identity[T Integer](n int) []T {
	if n <= 0 {
		return []T{}
	}
	identity := make([]T, n)
	for ii := range identity {
		identity[ii] = T(ii)
	}
	return identity
}

// Apply returns values reordered by permutation: output[i] = values[permutation[i]].
//
// The permutation must be valid and have the same length as values.
func Apply[T Integer, E any](permutation []T, values []E) ([]E, error) {
	if len(permutation) != len(values) {
		return nil, errors.Wrapf(ErrInvalidPermutation, "Apply() requires a permutation of length %d (one per value), got %v",
			len(values), permutation)
	}
	if err := Validate(permutation); err != nil {
		return nil, errors.WithMessage(err, "Apply()")
	}
	output := make([]E, len(values))
	for ii, src := range permutation {
		output[ii] = values[src]
	}
	return output, nil
}

// Compose returns the permutation equivalent to applying first and then second, that is:
//
//	Apply(Compose(first, second), values) == Apply(second, Apply(first, values))
//
// It is given by output[i] = first[second[i]]. Both permutations must be valid and of the same length.
func Compose[T Integer](first, second []T) ([]T, error) {
	if len(first) != len(second) {
		return nil, errors.Wrapf(ErrInvalidPermutation, "Compose() requires permutations of the same length, got %v and %v",
			first, second)
	}
	if err := Validate(first); err != nil {
		return nil, errors.WithMessage(err, "Compose() first permutation")
	}
	if err := Validate(second); err != nil {
		return nil, errors.WithMessage(err, "Compose() second permutation")
	}
	output := make([]T, len(first))
	for ii, src := range second {
		output[ii] = first[src]
	}
	return output, nil
}

// ToStableHLO renders the permutation as a StableHLO dense array attribute, as used
// by the `permutation` attribute of `stablehlo.transpose`. E.g.: "array<i64: 2, 0, 1>".
//
// The element type follows T: []int32 renders as "array<i32: ...>".
func ToStableHLO[T Integer](permutation []T) string {
	var sb strings.Builder
	sb.WriteString("array<")
	sb.WriteString(utils.DTypeToStableHLO(utils.DTypeOf[T]()))
	for ii, value := range permutation {
		if ii == 0 {
			sb.WriteString(": ")
		} else {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d", value)
	}
	sb.WriteString(">")
	return sb.String()
}
