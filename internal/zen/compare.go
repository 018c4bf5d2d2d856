package zen

import (
	"github.com/maruel/natural"
	"golang.org/x/exp/constraints"
)

// CompareOrdered is a comparison function for Sort.
func CompareOrdered[T constraints.Ordered](x, y T) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// NaturalOrder is a comparison function for Sort that orders the digit sequences of strings
// by their numeric value: "item2" < "item10".
func NaturalOrder[S ~string](x, y S) int {
	switch {
	case natural.Less(string(x), string(y)):
		return -1
	case natural.Less(string(y), string(x)):
		return 1
	}
	return 0
}

// SortOrdered returns a copy of a sorted in ascending order.
func SortOrdered[T constraints.Ordered](a *Array[T]) *Array[T] {
	return a.Sort(CompareOrdered[T])
}
