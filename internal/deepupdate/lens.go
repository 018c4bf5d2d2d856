// Package deepupdate builds immutable updates of nested model values: a Lens focuses on a part of a value,
// an Op is a terminal update of an array that always returns an array of the same element type.
package deepupdate

import (
	"github.com/inoxlang/zen/internal/zen"
)

// A Lens gets a part A of a value S and returns copies of S with that part replaced.
// Set should not modify the passed S.
type Lens[S any, A any] struct {
	Get func(s S) A
	Set func(s S, a A) S
}

func NewLens[S any, A any](get func(s S) A, set func(s S, a A) S) Lens[S, A] {
	return Lens[S, A]{Get: get, Set: set}
}

// Compose returns a lens focusing on the part B of the part A focused by outer.
func Compose[S any, A any, B any](outer Lens[S, A], inner Lens[A, B]) Lens[S, B] {
	return Lens[S, B]{
		Get: func(s S) B {
			return inner.Get(outer.Get(s))
		},
		Set: func(s S, b B) S {
			return outer.Set(s, inner.Set(outer.Get(s), b))
		},
	}
}

// At returns a lens focusing on the element at index idx of an array. Get returns the zero value if idx
// is out of range, Set panics in that case.
func At[T any](idx int) Lens[*zen.Array[T], T] {
	return Lens[*zen.Array[T], T]{
		Get: func(a *zen.Array[T]) T {
			elem, _ := a.Get(idx)
			return elem
		},
		Set: func(a *zen.Array[T], elem T) *zen.Array[T] {
			return a.Set(idx, elem)
		},
	}
}

// Update returns a copy of s where the part focused by lens is replaced by fn(part).
func Update[S any, A any](s S, lens Lens[S, A], fn func(a A) A) S {
	return lens.Set(s, fn(lens.Get(s)))
}
