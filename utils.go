package hickory

import (
	"errors"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Float | constraints.Integer
}

func Filter[T any](slice []T, predicate func(T) bool) []T {
	filtered := make([]T, 0, len(slice))
	for _, elem := range slice {
		if predicate(elem) {
			filtered = append(filtered, elem)
		}
	}
	return filtered
}

func Min[T Number](a T, b T) T {
	if a > b {
		return b
	}

	return a
}

func Max[T Number](a T, b T) T {
	if a < b {
		return b
	}

	return a
}

var errEmptyData = errors.New("data must not be empty")

// MinMax returns the minimum and maximum of data.
func MinMax[T Number](data []T) (T, T, error) {
	if len(data) == 0 {
		var zero T
		return zero, zero, errEmptyData
	}

	lo, hi := data[0], data[0]
	for _, v := range data[1:] {
		lo = Min(lo, v)
		hi = Max(hi, v)
	}
	return lo, hi, nil
}

// Linspace returns n evenly spaced values over [lo, hi], endpoints included.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 1 {
		return []float64{lo}
	}

	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}

// Opt returns a pointer to v, for filling optional fields inline.
func Opt[T any](v T) *T {
	return &v
}
