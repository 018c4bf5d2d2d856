package utils

import (
	"golang.org/x/exp/constraints"
)

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Clamp returns v limited to the inclusive range [low, high].
func Clamp[T constraints.Ordered](v, low, high T) T {
	return Max(low, Min(v, high))
}
