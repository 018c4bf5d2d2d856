package zen

import (
	"math"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayCreation(t *testing.T) {

	t.Run("Create copies the passed slice", func(t *testing.T) {
		values := []int{1, 2, 3}
		a := Create(values)
		values[0] = 100

		assert.Equal(t, []int{1, 2, 3}, a.ArrayView())
	})

	t.Run("Create with no elements", func(t *testing.T) {
		a := Create[int](nil)
		assert.True(t, a.IsEmpty())
		assert.Equal(t, 0, a.Size())
		assert.NotNil(t, a.ArrayView())
	})

	t.Run("CreateFrom", func(t *testing.T) {
		a := Of("a", "b")
		b := CreateFrom(a)

		assert.NotSame(t, a, b)
		assert.Equal(t, a.ArrayView(), b.ArrayView())
		assert.True(t, CreateFrom[string](nil).IsEmpty())
	})

	t.Run("FromRange", func(t *testing.T) {
		assert.Equal(t, []int{0, 1, 2, 3, 4}, FromRange(5).ArrayView())
		assert.Equal(t, []int{1, 2, 3, 4, 5}, FromRange(1, 6).ArrayView())
		assert.Equal(t, []uint8{3}, FromRange[uint8](3, 4).ArrayView())
		assert.True(t, FromRange(0).IsEmpty())
		assert.True(t, FromRange(4, 2).IsEmpty())
		assert.True(t, FromRange(-3).IsEmpty())

		assert.Panics(t, func() {
			FromRange(1, 2, 3)
		})
	})

	t.Run("FromRange with a span that overflows the element type", func(t *testing.T) {
		r := FromRange[int8](-100, 100)
		assert.Equal(t, 200, r.Size())

		first, _ := r.First()
		last, _ := r.Last()
		assert.Equal(t, int8(-100), first)
		assert.Equal(t, int8(99), last)

		assert.Equal(t, 255, FromRange[int8](math.MinInt8, math.MaxInt8).Size())
		assert.Equal(t, []int64{math.MaxInt64 - 2, math.MaxInt64 - 1}, FromRange[int64](math.MaxInt64-2, math.MaxInt64).ArrayView())
		assert.Equal(t, []int64{math.MinInt64, math.MinInt64 + 1}, FromRange[int64](math.MinInt64, math.MinInt64+2).ArrayView())
	})

	t.Run("FromAssociativeMap", func(t *testing.T) {
		m := NewOrderedMap[string, int]().Set("b", 2).Set("a", 1).Set("c", 3)

		assert.Equal(t, []int{2, 1, 3}, FromAssociativeMap(m).ArrayView())
		assert.True(t, FromAssociativeMap[string, int](nil).IsEmpty())
	})

	t.Run("FromSortedMap", func(t *testing.T) {
		m := map[string]int{"b": 2, "c": 3, "a": 1}
		assert.Equal(t, []int{1, 2, 3}, FromSortedMap(m).ArrayView())
	})
}

func TestArrayReads(t *testing.T) {

	t.Run("ToArray returns an independent copy", func(t *testing.T) {
		a := Of(1, 2, 3)
		valuesCopy := a.ToArray()
		valuesCopy[0] = 100

		assert.Equal(t, []int{1, 2, 3}, a.ArrayView())
	})

	t.Run("appending to the view does not modify the array", func(t *testing.T) {
		a := Of(1, 2, 3).Pop()
		view := a.ArrayView()
		_ = append(view, 100)

		assert.Equal(t, []int{1, 2}, a.ArrayView())
		assert.Equal(t, []int{1, 2, 3}, a.Push(3).ArrayView())
	})

	t.Run("Get", func(t *testing.T) {
		a := Of("a", "b")

		elem, ok := a.Get(1)
		assert.True(t, ok)
		assert.Equal(t, "b", elem)

		for _, idx := range []int{-1, 2, 100} {
			elem, ok := a.Get(idx)
			assert.False(t, ok)
			assert.Zero(t, elem)
		}
	})

	t.Run("First & Last", func(t *testing.T) {
		a := Of(1, 2, 3)

		first, ok := a.First()
		assert.True(t, ok)
		assert.Equal(t, 1, first)

		last, ok := a.Last()
		assert.True(t, ok)
		assert.Equal(t, 3, last)
	})

	t.Run("reads on an empty array do not panic", func(t *testing.T) {
		a := Empty[int]()

		_, ok := a.First()
		assert.False(t, ok)

		_, ok = a.Last()
		assert.False(t, ok)

		_, ok = a.Get(0)
		assert.False(t, ok)
	})

	t.Run("IndexOf", func(t *testing.T) {
		a := Of(1, 2, 1)

		assert.Equal(t, 0, a.IndexOf(1))
		assert.Equal(t, 2, a.IndexOf(1, 1))
		assert.Equal(t, 2, a.IndexOf(1, -1))
		assert.Equal(t, 0, a.IndexOf(1, -100))
		assert.Equal(t, -1, a.IndexOf(1, 3))
		assert.Equal(t, -1, a.IndexOf(3))
	})

	t.Run("IndexOf with non comparable elements", func(t *testing.T) {
		a := Of[any]([]int{1}, []int{2})
		assert.Equal(t, 1, a.IndexOf([]int{2}))
	})

	t.Run("Join", func(t *testing.T) {
		assert.Equal(t, "1,2,3", Of(1, 2, 3).Join())
		assert.Equal(t, "a - b", Of("a", "b").Join(" - "))
		assert.Equal(t, "", Empty[string]().Join())
		assert.Equal(t, "a,,1", Of[any]("a", nil, 1).Join())
	})

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "[1 2 3]", Of(1, 2, 3).String())
	})

	t.Run("Equal", func(t *testing.T) {
		assert.True(t, Equal(Of(1, 2), Of(1, 2)))
		assert.False(t, Equal(Of(1, 2), Of(2, 1)))
		assert.False(t, Equal(Of(1, 2), Of(1)))
	})
}

func TestArrayIncludes(t *testing.T) {

	t.Run("comparable elements", func(t *testing.T) {
		a := Of("a", "b")

		assert.True(t, a.Includes("a"))
		assert.True(t, a.Includes("b"))
		assert.False(t, a.Includes("c"))
	})

	t.Run("the membership set is built once", func(t *testing.T) {
		a := Of(1, 2)
		assert.Nil(t, a.membership.Load())

		assert.True(t, a.Includes(1))
		set := a.membership.Load()
		require.NotNil(t, set)

		assert.False(t, a.Includes(3))
		assert.Same(t, set, a.membership.Load())
	})

	t.Run("derived arrays have their own membership set", func(t *testing.T) {
		a := Of(1, 2)
		assert.False(t, a.Includes(3))

		b := a.Push(3)
		assert.True(t, b.Includes(3))
		assert.False(t, a.Includes(3))
	})

	t.Run("pointers are compared by identity", func(t *testing.T) {
		type item struct{ id string }
		p1 := &item{id: "x"}
		p2 := &item{id: "x"}

		a := Of(p1)
		assert.True(t, a.Includes(p1))
		assert.False(t, a.Includes(p2))
	})

	t.Run("non comparable elements", func(t *testing.T) {
		a := Of[any]([]int{1}, map[string]int{"a": 1}, 2, nil)

		assert.True(t, a.Includes([]int{1}))
		assert.True(t, a.Includes(map[string]int{"a": 1}))
		assert.True(t, a.Includes(2))
		assert.True(t, a.Includes(nil))
		assert.False(t, a.Includes([]int{2}))
		assert.False(t, a.Includes("2"))
	})

	t.Run("concurrent calls", func(t *testing.T) {
		a := FromRange(1000)

		wg := new(sync.WaitGroup)
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				assert.True(t, a.Includes(i*10))
				assert.False(t, a.Includes(-i-1))
			}(i)
		}
		wg.Wait()
	})
}

func TestArrayIteration(t *testing.T) {

	t.Run("Iterator", func(t *testing.T) {
		a := Of("a", "b", "c")

		for round := 0; round < 2; round++ {
			it := a.Iterator()
			var elements []string
			var indexes []int
			for it.Next() {
				elements = append(elements, it.Value())
				indexes = append(indexes, it.Index())
			}

			assert.Equal(t, []string{"a", "b", "c"}, elements)
			assert.Equal(t, []int{0, 1, 2}, indexes)
			assert.False(t, it.Next())
		}
	})

	t.Run("Iterator on an empty array", func(t *testing.T) {
		it := Empty[int]().Iterator()
		assert.False(t, it.Next())
	})

	t.Run("Values", func(t *testing.T) {
		a := Of(1, 2, 3)

		assert.Equal(t, []int{1, 2, 3}, slices.Collect(a.Values()))
		//iterating again yields the same elements
		assert.Equal(t, []int{1, 2, 3}, slices.Collect(a.Values()))
	})

	t.Run("All with early exit", func(t *testing.T) {
		a := Of("a", "b", "c")

		var visited []int
		for i, e := range a.All() {
			if e == "c" {
				break
			}
			visited = append(visited, i)
		}
		assert.Equal(t, []int{0, 1}, visited)
	})

	t.Run("ToSet", func(t *testing.T) {
		set := ToSet(Of(1, 2, 2, 3))
		assert.Equal(t, 3, set.Size())
		assert.True(t, set.Contains(2))
	})
}
