package utils

func CopySlice[T any](s []T) []T {
	sliceCopy := make([]T, len(s))
	copy(sliceCopy, s)

	return sliceCopy
}

func ReversedSlice[T any](s []T) []T {
	reversed := make([]T, len(s))
	copy(reversed, s)

	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}

	return reversed
}

func MapSliceIndexed[T any, U any](s []T, mapper func(e T, i int) U) []U {
	result := make([]U, len(s))

	for i, e := range s {
		result[i] = mapper(e, i)
	}

	return result
}

// ConcatSlices returns a new slice containing the elements of all the passed slices.
func ConcatSlices[T any](slices ...[]T) []T {
	total := 0
	for _, s := range slices {
		total += len(s)
	}

	result := make([]T, 0, total)
	for _, s := range slices {
		result = append(result, s...)
	}
	return result
}

// RelativeIndex resolves an index that may be negative (counted from the end) and clamps it to [0, length].
func RelativeIndex(index int, length int) int {
	if index < 0 {
		return Max(length+index, 0)
	}
	return Min(index, length)
}

func EmptySliceIfNil[T any](slice []T) []T {
	if slice == nil {
		return make([]T, 0)
	}
	return slice
}
