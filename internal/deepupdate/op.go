package deepupdate

import (
	"github.com/inoxlang/zen/internal/utils"
	"github.com/inoxlang/zen/internal/zen"
)

// An Op is a terminal update of an array: it returns a new array (or the same one if nothing changed)
// with the same element type. There is no Op for zen.MapValues since it returns a slice.
type Op[T any] func(a *zen.Array[T]) *zen.Array[T]

// UpdateArray returns a copy of s where the array focused by lens is updated by ops, in order.
func UpdateArray[S any, T any](s S, lens Lens[S, *zen.Array[T]], ops ...Op[T]) S {
	return Update(s, lens, Chain(ops...))
}

// TryUpdateArray is like UpdateArray but returns an error instead of panicking when an op fails
// (e.g. Set at an invalid index). s is never modified.
func TryUpdateArray[S any, T any](s S, lens Lens[S, *zen.Array[T]], ops ...Op[T]) (result S, err error) {
	err = utils.Catch(func() {
		result = UpdateArray(s, lens, ops...)
	})
	return
}

// Chain returns an Op applying ops in order.
func Chain[T any](ops ...Op[T]) Op[T] {
	return func(a *zen.Array[T]) *zen.Array[T] {
		for _, op := range ops {
			a = op(a)
		}
		return a
	}
}

// TryApply applies op to a and converts a panic into an error.
func TryApply[T any](a *zen.Array[T], op Op[T]) (result *zen.Array[T], err error) {
	err = utils.Catch(func() {
		result = op(a)
	})
	return
}

func Push[T any](item T) Op[T] {
	return func(a *zen.Array[T]) *zen.Array[T] { return a.Push(item) }
}

func Unshift[T any](item T) Op[T] {
	return func(a *zen.Array[T]) *zen.Array[T] { return a.Unshift(item) }
}

func Pop[T any]() Op[T] {
	return (*zen.Array[T]).Pop
}

func Shift[T any]() Op[T] {
	return (*zen.Array[T]).Shift
}

func Clear[T any]() Op[T] {
	return (*zen.Array[T]).Clear
}

func Tail[T any]() Op[T] {
	return (*zen.Array[T]).Tail
}

func Reverse[T any]() Op[T] {
	return (*zen.Array[T]).Reverse
}

func Slice[T any](begin int, end ...int) Op[T] {
	return func(a *zen.Array[T]) *zen.Array[T] { return a.Slice(begin, end...) }
}

func Splice[T any](start int, deleteCount int, items ...T) Op[T] {
	return func(a *zen.Array[T]) *zen.Array[T] { return a.Splice(start, deleteCount, items...) }
}

func InsertAt[T any](index int, item T) Op[T] {
	return func(a *zen.Array[T]) *zen.Array[T] { return a.InsertAt(index, item) }
}

func Delete[T any](idx int) Op[T] {
	return func(a *zen.Array[T]) *zen.Array[T] { return a.Delete(idx) }
}

func Set[T any](idx int, value T) Op[T] {
	return func(a *zen.Array[T]) *zen.Array[T] { return a.Set(idx, value) }
}

func Apply[T any](idx int, fn func(elem T) T) Op[T] {
	return func(a *zen.Array[T]) *zen.Array[T] { return a.Apply(idx, fn) }
}

func Fill[T any](value T, start int, end ...int) Op[T] {
	return func(a *zen.Array[T]) *zen.Array[T] { return a.Fill(value, start, end...) }
}

func Sort[T any](compare func(x, y T) int) Op[T] {
	return func(a *zen.Array[T]) *zen.Array[T] { return a.Sort(compare) }
}

func Concat[T any](items ...any) Op[T] {
	return func(a *zen.Array[T]) *zen.Array[T] { return a.Concat(items...) }
}

func Intersection[T any](items ...any) Op[T] {
	return func(a *zen.Array[T]) *zen.Array[T] { return a.Intersection(items...) }
}

// Map returns an Op replacing each element by fn(element), the element type cannot change.
func Map[T any](fn func(elem T, index int) T) Op[T] {
	return func(a *zen.Array[T]) *zen.Array[T] { return zen.Map(a, fn) }
}

func Filter[T any](fn func(elem T, index int) bool) Op[T] {
	return func(a *zen.Array[T]) *zen.Array[T] { return a.Filter(fn) }
}

func FindAndDelete[T any](fn func(elem T, index int) bool) Op[T] {
	return func(a *zen.Array[T]) *zen.Array[T] { return a.FindAndDelete(fn) }
}
