package zen

import "iter"

// Iterator iterates over the elements of an Array, it is not thread safe.
// Create a new iterator to iterate again.
type Iterator[T any] struct {
	index    int
	elements []T
}

func (a *Array[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{
		index:    -1,
		elements: a.values,
	}
}

func (it *Iterator[T]) Next() bool {
	if it.index >= len(it.elements)-1 {
		return false
	}
	it.index++
	return true
}

func (it *Iterator[T]) Value() T {
	return it.elements[it.index]
}

func (it *Iterator[T]) Index() int {
	return it.index
}

// All returns an iterator over the indexes and elements of the array.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, e := range a.values {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements of the array.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, e := range a.values {
			if !yield(e) {
				return
			}
		}
	}
}
