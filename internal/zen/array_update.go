package zen

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/inoxlang/zen/internal/utils"
)

// The methods in this file never modify the receiver, they return a new array.
// Derived arrays may share the storage of the receiver since it never changes.

// Push returns an array with item appended.
func (a *Array[T]) Push(item T) *Array[T] {
	values := make([]T, len(a.values), len(a.values)+1)
	copy(values, a.values)
	return newArray(append(values, item))
}

// Unshift returns an array with item prepended.
func (a *Array[T]) Unshift(item T) *Array[T] {
	values := make([]T, 0, len(a.values)+1)
	values = append(values, item)
	return newArray(append(values, a.values...))
}

// Pop returns an array without the last element, the removed element is not returned: call Last() before.
// Pop returns an empty array if a is empty.
func (a *Array[T]) Pop() *Array[T] {
	if len(a.values) == 0 {
		return Empty[T]()
	}
	end := len(a.values) - 1
	return newArray(a.values[:end:end])
}

// Shift returns an array without the first element, the removed element is not returned: call First() before.
// Shift returns an empty array if a is empty.
func (a *Array[T]) Shift() *Array[T] {
	if len(a.values) == 0 {
		return Empty[T]()
	}
	return newArray(a.values[1:])
}

func (a *Array[T]) Clear() *Array[T] {
	return Empty[T]()
}

// Tail returns all elements except the first one.
func (a *Array[T]) Tail() *Array[T] {
	return a.Slice(1)
}

// Slice returns the elements in [begin, end), end defaults to the length of the array.
// Negative indexes are counted from the end.
func (a *Array[T]) Slice(begin int, end ...int) *Array[T] {
	length := len(a.values)
	start := utils.RelativeIndex(begin, length)
	stop := length
	if len(end) > 0 {
		stop = utils.RelativeIndex(end[0], length)
	}

	if stop <= start {
		return Empty[T]()
	}
	return newArray(a.values[start:stop:stop])
}

// Splice returns an array where deleteCount elements starting at start are replaced by items.
// A negative start is counted from the end, start and deleteCount are clamped to the array.
func (a *Array[T]) Splice(start int, deleteCount int, items ...T) *Array[T] {
	length := len(a.values)
	from := utils.RelativeIndex(start, length)
	count := utils.Clamp(deleteCount, 0, length-from)

	values := make([]T, 0, length-count+len(items))
	values = append(values, a.values[:from]...)
	values = append(values, items...)
	values = append(values, a.values[from+count:]...)
	return newArray(values)
}

// InsertAt returns an array where item is at position index, it is equivalent to Splice(index, 0, item).
func (a *Array[T]) InsertAt(index int, item T) *Array[T] {
	return a.Splice(index, 0, item)
}

// Delete returns an array without the element at idx, it panics if idx is out of range.
func (a *Array[T]) Delete(idx int) *Array[T] {
	checkBounds("Delete", idx, len(a.values))
	return a.Splice(idx, 1)
}

// Set returns an array where the element at idx is replaced by value, it panics if idx is out of range.
// Unlike Get, Set never extends the array.
func (a *Array[T]) Set(idx int, value T) *Array[T] {
	checkBounds("Set", idx, len(a.values))

	values := utils.CopySlice(a.values)
	values[idx] = value
	return newArray(values)
}

// Apply is equivalent to Set(idx, fn(elem at idx)), it panics if idx is out of range.
func (a *Array[T]) Apply(idx int, fn func(elem T) T) *Array[T] {
	checkBounds("Apply", idx, len(a.values))

	values := utils.CopySlice(a.values)
	values[idx] = fn(values[idx])
	return newArray(values)
}

// Fill returns an array where the elements in [start, end) are set to value, end defaults to the length
// of the array. Negative indexes are counted from the end.
func (a *Array[T]) Fill(value T, start int, end ...int) *Array[T] {
	length := len(a.values)
	from := utils.RelativeIndex(start, length)
	to := length
	if len(end) > 0 {
		to = utils.RelativeIndex(end[0], length)
	}

	values := utils.CopySlice(a.values)
	for i := from; i < to; i++ {
		values[i] = value
	}
	return newArray(values)
}

func (a *Array[T]) FillAll(value T) *Array[T] {
	return a.Fill(value, 0)
}

// Sort returns a sorted copy of the array, the sort is stable. compare should return a negative
// number when x < y, a positive number when x > y and zero otherwise.
func (a *Array[T]) Sort(compare func(x, y T) int) *Array[T] {
	values := utils.CopySlice(a.values)
	slices.SortStableFunc(values, compare)
	return newArray(values)
}

func (a *Array[T]) Reverse() *Array[T] {
	return newArray(utils.ReversedSlice(a.values))
}

// Concat returns an array containing the elements of a followed by the items, in argument order.
// Each item can be an *Array[T], a []T or a T, Concat panics if an item has another type.
// If T is an interface type, slices and arrays of another element type are spread as well when
// their elements implement T: Of[any](1).Concat([]int{2, 3}) is [1 2 3]. Only one level is spread.
func (a *Array[T]) Concat(items ...any) *Array[T] {
	parts := make([][]T, 0, 1+len(items))
	parts = append(parts, a.values)

	for _, item := range items {
		parts = append(parts, normalizeItem[T]("Concat", item))
	}
	return newArray(utils.ConcatSlices(parts...))
}

// Intersection accepts the same items as Concat and returns the concatenation of a and the items
// without duplicates, the first occurrence of an element is kept.
//
// Despite its name Intersection does not compute a set intersection: elements present in a single
// input are kept. Existing callers depend on this behavior.
func (a *Array[T]) Intersection(items ...any) *Array[T] {
	seen := newMembershipSet(len(a.values))
	values := make([]T, 0, len(a.values))

	add := func(elements []T) {
		for _, e := range elements {
			if seen.insert(e) {
				values = append(values, e)
			}
		}
	}

	add(a.values)
	for _, item := range items {
		add(normalizeItem[T]("Intersection", item))
	}
	return newArray(values)
}

// normalizeItem converts an *Array[T], a []T or a T to a slice.
func normalizeItem[T any](operation string, item any) []T {
	switch v := item.(type) {
	case *Array[T]:
		if v == nil {
			return nil
		}
		return v.values
	case []T:
		return v
	case T:
		if elements, ok := spreadIntoInterface[T](item); ok {
			return elements
		}
		return []T{v}
	case nil:
		if isNilable[T]() {
			var zero T
			return []T{zero}
		}
	}

	if elements, ok := spreadIntoInterface[T](item); ok {
		return elements
	}

	panic(fmt.Errorf("%w: %s expects %s elements, arrays or slices of them, got %T",
		ErrIncompatibleElement, operation, reflect.TypeFor[T](), item))
}

// elementsAsAnySource is implemented by every *Array type.
type elementsAsAnySource interface {
	elementsAsAny() []any
}

func (a *Array[T]) elementsAsAny() []any {
	if a == nil {
		return nil
	}
	return utils.MapSliceIndexed(a.values, func(e T, _ int) any { return e })
}

// spreadIntoInterface returns the elements of item if T is an interface type, item is a slice or an *Array
// of another element type and all its elements implement T. ok is false otherwise.
func spreadIntoInterface[T any](item any) (elements []T, ok bool) {
	if reflect.TypeFor[T]().Kind() != reflect.Interface {
		return nil, false
	}

	var values []any
	if source, isArray := item.(elementsAsAnySource); isArray {
		values = source.elementsAsAny()
	} else {
		slice := reflect.ValueOf(item)
		if slice.Kind() != reflect.Slice {
			return nil, false
		}
		values = make([]any, slice.Len())
		for i := range values {
			values[i] = slice.Index(i).Interface()
		}
	}

	elements = make([]T, len(values))
	for i, v := range values {
		if v == nil {
			continue
		}
		elem, implements := v.(T)
		if !implements {
			return nil, false
		}
		elements[i] = elem
	}
	return elements, true
}

func isNilable[T any]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	}
	return false
}
