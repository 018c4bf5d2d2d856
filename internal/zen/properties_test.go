package zen

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

const PROPERTY_ROUNDS = 200

func randomArray(r *rand.Rand) *Array[int] {
	values := make([]int, r.IntN(12))
	for i := range values {
		values[i] = r.IntN(20) - 5
	}
	return Create(values)
}

func TestArrayProperties(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	t.Run("operations never modify the receiver", func(t *testing.T) {
		for round := 0; round < PROPERTY_ROUNDS; round++ {
			s := randomArray(r)
			snapshot := s.ToArray()
			x := r.IntN(10)

			s.Push(x)
			s.Pop()
			s.Shift()
			s.Unshift(x)
			s.Slice(r.IntN(5)-2, r.IntN(5))
			s.Splice(r.IntN(5)-2, r.IntN(3), x, x)
			s.Sort(CompareOrdered[int])
			s.Reverse()
			Map(s, func(e int, _ int) int { return e * 3 })
			s.Filter(func(e int, _ int) bool { return e > 0 })
			s.Fill(x, r.IntN(4))
			s.Clear()
			s.Concat(x)
			s.Intersection(Of(x))
			if !s.IsEmpty() {
				idx := r.IntN(s.Size())
				s.Set(idx, x)
				s.Delete(idx)
				s.Apply(idx, func(e int) int { return e + 1 })
			}

			assert.Equal(t, snapshot, s.ArrayView())
		}
	})

	t.Run("Create(s.ToArray()) equals s", func(t *testing.T) {
		for round := 0; round < PROPERTY_ROUNDS; round++ {
			s := randomArray(r)
			assert.True(t, Equal(s, Create(s.ToArray())))
		}
	})

	t.Run("Push then Pop is the identity", func(t *testing.T) {
		for round := 0; round < PROPERTY_ROUNDS; round++ {
			s := randomArray(r)
			assert.True(t, Equal(s, s.Push(r.Int()).Pop()))
		}
	})

	t.Run("Clear is idempotent and Slice(0) is a copy", func(t *testing.T) {
		for round := 0; round < PROPERTY_ROUNDS; round++ {
			s := randomArray(r)
			assert.True(t, Equal(s.Clear(), s.Clear().Clear()))
			assert.True(t, Equal(s, s.Slice(0)))
		}
	})

	t.Run("writes at invalid indexes panic", func(t *testing.T) {
		for round := 0; round < PROPERTY_ROUNDS/10; round++ {
			s := randomArray(r)
			assertPanicsWithErrorIs(t, ErrIndexOutOfBounds, func() {
				s.Set(s.Size(), 0)
			})
			assertPanicsWithErrorIs(t, ErrIndexOutOfBounds, func() {
				s.Delete(-1)
			})
		}
	})

	t.Run("Includes agrees with IndexOf", func(t *testing.T) {
		for round := 0; round < PROPERTY_ROUNDS; round++ {
			s := randomArray(r)
			x := r.IntN(20) - 5
			assert.Equal(t, s.IndexOf(x) >= 0, s.Includes(x))
		}
	})
}
