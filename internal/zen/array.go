// Package zen implements immutable collections used as the value types of application models.
// An Array never changes after its creation: every operation that looks like a mutation returns a new Array.
package zen

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/inoxlang/zen/internal/utils"
	"golang.org/x/exp/constraints"
)

const DEFAULT_JOIN_SEPARATOR = ","

// Array is an immutable ordered sequence of elements of type T. Arrays are safe for concurrent use.
type Array[T any] struct {
	values []T

	//built by the first call to Includes, never modified afterwards.
	membership atomic.Pointer[membershipSet]
}

// newArray creates an Array that takes ownership of values, values should not be modified afterwards.
func newArray[T any](values []T) *Array[T] {
	if values == nil {
		values = []T{}
	}
	return &Array[T]{values: values}
}

// Empty returns an empty array.
func Empty[T any]() *Array[T] {
	return newArray[T](nil)
}

// Create returns an array containing a copy of values, the caller remains free to modify the passed slice.
func Create[T any](values []T) *Array[T] {
	return newArray(utils.CopySlice(values))
}

// Of returns an array containing the passed values.
func Of[T any](values ...T) *Array[T] {
	return Create(values)
}

// CreateFrom returns a new array with the same elements as other. Since the elements of other
// never change the storage is shared.
func CreateFrom[T any](other *Array[T]) *Array[T] {
	if other == nil {
		return Empty[T]()
	}
	return newArray(other.values)
}

// FromRange returns the consecutive integers in [start, end). If end is not provided the range is [0, start).
func FromRange[I constraints.Integer](start I, end ...I) *Array[I] {
	var from, to I

	switch len(end) {
	case 0:
		to = start
	case 1:
		from, to = start, end[0]
	default:
		panic(fmt.Errorf("FromRange expects at most 2 bounds, got %d", 1+len(end)))
	}

	if to <= from {
		return Empty[I]()
	}

	//to-from can overflow I, the span is computed on 64 bits.
	var values []I
	if span := uint64(to) - uint64(from); span <= math.MaxInt32 {
		values = make([]I, 0, int(span))
	}
	for i := from; i < to; i++ {
		values = append(values, i)
	}
	return newArray(values)
}

// FromAssociativeMap returns an array containing the values of m in iteration order, keys are discarded.
func FromAssociativeMap[K comparable, V any](m *OrderedMap[K, V]) *Array[V] {
	if m == nil {
		return Empty[V]()
	}
	return newArray(m.Values())
}

// FromSortedMap returns an array containing the values of m ordered by key.
func FromSortedMap[K constraints.Ordered, V any](m map[K]V) *Array[V] {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})

	values := make([]V, len(keys))
	for i, k := range keys {
		values[i] = m[k]
	}
	return newArray(values)
}

// ToArray returns a copy of the elements, the caller is free to modify it.
func (a *Array[T]) ToArray() []T {
	return utils.CopySlice(a.values)
}

// ArrayView returns the elements without copying them: the returned slice should not be modified.
// Its capacity is limited to its length so appending to it never writes to the array's storage.
func (a *Array[T]) ArrayView() []T {
	return a.values[:len(a.values):len(a.values)]
}

// Get returns the element at index idx, ok is false if idx is out of range.
func (a *Array[T]) Get(idx int) (elem T, ok bool) {
	if idx < 0 || idx >= len(a.values) {
		return
	}
	return a.values[idx], true
}

func (a *Array[T]) First() (T, bool) {
	return a.Get(0)
}

func (a *Array[T]) Last() (T, bool) {
	return a.Get(len(a.values) - 1)
}

func (a *Array[T]) Size() int {
	return len(a.values)
}

func (a *Array[T]) IsEmpty() bool {
	return len(a.values) == 0
}

// Includes reports whether value is an element of the array. The first call builds a membership set
// that is reused by subsequent calls.
func (a *Array[T]) Includes(value T) bool {
	membership := a.membership.Load()
	if membership == nil {
		built := buildMembershipSet(a.values)
		if a.membership.CompareAndSwap(nil, built) {
			membership = built
		} else {
			membership = a.membership.Load()
		}
	}
	return membership.contains(value)
}

// IndexOf returns the index of the first element equal to value, starting the search at fromIndex (0 by default).
// A negative fromIndex is counted from the end. IndexOf returns -1 if there is no such element.
func (a *Array[T]) IndexOf(value T, fromIndex ...int) int {
	start := 0
	if len(fromIndex) > 0 {
		start = utils.RelativeIndex(fromIndex[0], len(a.values))
	}

	for i := start; i < len(a.values); i++ {
		if SameValue(a.values[i], value) {
			return i
		}
	}
	return -1
}

// Join concatenates the string representations of the elements, separated by separator (a comma by default).
// nil elements are represented by an empty string.
func (a *Array[T]) Join(separator ...string) string {
	sep := DEFAULT_JOIN_SEPARATOR
	if len(separator) > 0 {
		sep = separator[0]
	}

	var builder strings.Builder
	for i, e := range a.values {
		if i > 0 {
			builder.WriteString(sep)
		}
		if v := any(e); v != nil {
			builder.WriteString(fmt.Sprint(v))
		}
	}
	return builder.String()
}

func (a *Array[T]) String() string {
	return fmt.Sprint(a.values)
}

// EqualFunc reports whether a and other have the same length and equal elements according to eq.
func (a *Array[T]) EqualFunc(other *Array[T], eq func(x, y T) bool) bool {
	if len(a.values) != len(other.values) {
		return false
	}
	for i, e := range a.values {
		if !eq(e, other.values[i]) {
			return false
		}
	}
	return true
}

func Equal[T comparable](a, b *Array[T]) bool {
	return a.EqualFunc(b, func(x, y T) bool {
		return x == y
	})
}
