package zen

import (
	"fmt"
	"reflect"

	"github.com/bits-and-blooms/bitset"
	"github.com/inoxlang/zen/internal/utils"
)

// Map returns an array containing the results of calling fn on each element.
func Map[T any, U any](a *Array[T], fn func(elem T, index int) U) *Array[U] {
	return newArray(utils.MapSliceIndexed(a.values, fn))
}

// MapValues is like Map but returns a slice instead of an array.
func MapValues[T any, U any](a *Array[T], fn func(elem T, index int) U) []U {
	return utils.MapSliceIndexed(a.values, fn)
}

// FlatMap calls fn on each element and concatenates the results. fn can return a U, a []U or an *Array[U],
// FlatMap panics for any other type. The element type U usually has to be specified: FlatMap[string](a, fn).
// Results are spread like the items of Concat, including slices of another element type when U is an interface.
func FlatMap[U any, T any](a *Array[T], fn func(elem T, index int) any) *Array[U] {
	var values []U
	for i, e := range a.values {
		values = append(values, normalizeItem[U]("FlatMap", fn(e, i))...)
	}
	return newArray(values)
}

// Flatten flattens an array whose elements are U values, []U slices or *Array[U] arrays by one level.
func Flatten[U any, T any](a *Array[T]) *Array[U] {
	var values []U
	for _, e := range a.values {
		values = append(values, normalizeItem[U]("Flatten", e)...)
	}
	return newArray(values)
}

// Filter returns an array containing the elements for which fn returns true, in the same order.
func (a *Array[T]) Filter(fn func(elem T, index int) bool) *Array[T] {
	mask := bitset.New(uint(len(a.values)))
	for i, e := range a.values {
		if fn(e, i) {
			mask.Set(uint(i))
		}
	}
	return newArray(selectMasked(a.values, mask, func(e T) T { return e }))
}

// FilterInstance returns an array containing the elements whose dynamic type is U (or implements U if U
// is an interface).
func FilterInstance[U any, T any](a *Array[T]) *Array[U] {
	mask := bitset.New(uint(len(a.values)))
	for i, e := range a.values {
		if _, ok := any(e).(U); ok {
			mask.Set(uint(i))
		}
	}
	return newArray(selectMasked(a.values, mask, func(e T) U { return any(e).(U) }))
}

func selectMasked[T any, U any](values []T, mask *bitset.BitSet, convert func(T) U) []U {
	result := make([]U, 0, mask.Count())
	for i, ok := mask.NextSet(0); ok; i, ok = mask.NextSet(i + 1) {
		result = append(result, convert(values[i]))
	}
	return result
}

// Find returns the first element for which fn returns true, ok is false if there is no such element.
func (a *Array[T]) Find(fn func(elem T, index int) bool) (elem T, ok bool) {
	if i := a.FindIndex(fn); i >= 0 {
		return a.values[i], true
	}
	return
}

// FindIndex returns the index of the first element for which fn returns true, or -1.
func (a *Array[T]) FindIndex(fn func(elem T, index int) bool) int {
	for i, e := range a.values {
		if fn(e, i) {
			return i
		}
	}
	return -1
}

// FindAndDelete returns an array without the first element for which fn returns true.
// If no element matches the receiver itself is returned.
func (a *Array[T]) FindAndDelete(fn func(elem T, index int) bool) *Array[T] {
	i := a.FindIndex(fn)
	if i < 0 {
		return a
	}
	return a.Delete(i)
}

func (a *Array[T]) Some(fn func(elem T, index int) bool) bool {
	return a.FindIndex(fn) >= 0
}

func (a *Array[T]) Every(fn func(elem T, index int) bool) bool {
	for i, e := range a.values {
		if !fn(e, i) {
			return false
		}
	}
	return true
}

func (a *Array[T]) ForEach(fn func(elem T, index int)) {
	for i, e := range a.values {
		fn(e, i)
	}
}

// Reduce folds the elements from left to right.
func Reduce[T any, U any](a *Array[T], fn func(acc U, elem T, index int) U, initial U) U {
	acc := initial
	for i, e := range a.values {
		acc = fn(acc, e, i)
	}
	return acc
}

// Pluck returns an array containing the result of accessor for each element, it is the typed
// counterpart of Pull.
func Pluck[T any, U any](a *Array[T], accessor func(elem T) U) *Array[U] {
	return Map(a, func(e T, _ int) U {
		return accessor(e)
	})
}

// Pull calls the zero-argument accessor named accessor on every element and returns the results.
// The accessor can be a method, a func field of a struct or a func value in a map[string]... element.
// Pull is not type safe: it panics (ErrNoSuchAccessor, ErrNotCallable) if an element has no such
// accessor or if the accessor is not a function taking no arguments and returning a single value.
// Prefer Pluck when the element type is known.
func (a *Array[T]) Pull(accessor string) *Array[any] {
	return Map(a, func(e T, i int) any {
		return callAccessor(reflect.ValueOf(e), accessor, i)
	})
}

func callAccessor(element reflect.Value, name string, index int) any {
	if !element.IsValid() {
		panic(fmt.Errorf("%w: element %d is nil, it has no %s accessor", ErrNoSuchAccessor, index, name))
	}

	fn := element.MethodByName(name)
	if !fn.IsValid() {
		member, found := lookupMember(element, name)
		if !found {
			panic(fmt.Errorf("%w: element %d (%s) has no %s accessor", ErrNoSuchAccessor, index, element.Type(), name))
		}
		if member.Kind() != reflect.Func || member.IsNil() {
			panic(fmt.Errorf("%w: %s of element %d is a %s", ErrNotCallable, name, index, member.Kind()))
		}
		fn = member
	}

	fnType := fn.Type()
	if fnType.NumIn() != 0 || fnType.NumOut() != 1 {
		panic(fmt.Errorf("%w: %s of element %d should take no arguments and return a single value, its type is %s",
			ErrNotCallable, name, index, fnType))
	}
	return fn.Call(nil)[0].Interface()
}

// lookupMember returns the exported struct field or the map entry named name.
func lookupMember(v reflect.Value, name string) (reflect.Value, bool) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		field, ok := v.Type().FieldByName(name)
		if !ok {
			return reflect.Value{}, false
		}
		if !field.IsExported() {
			panic(fmt.Errorf("%w: %s is an unexported field", ErrNotCallable, name))
		}
		return v.FieldByIndex(field.Index), true
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return reflect.Value{}, false
		}
		entry := v.MapIndex(reflect.ValueOf(name).Convert(v.Type().Key()))
		if !entry.IsValid() {
			return reflect.Value{}, false
		}
		for entry.Kind() == reflect.Interface && !entry.IsNil() {
			entry = entry.Elem()
		}
		return entry, true
	}
	return reflect.Value{}, false
}
