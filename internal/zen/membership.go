package zen

import (
	"reflect"
	"slices"

	"github.com/hashicorp/go-set/v2"
)

// membershipSet stores the elements of an array for fast containment checks.
// Elements whose dynamic value cannot be compared with == are stored in a separate list
// and compared using deep equality.
type membershipSet struct {
	hashable   *set.Set[any]
	unhashable []any
}

func newMembershipSet(sizeHint int) *membershipSet {
	return &membershipSet{hashable: set.New[any](sizeHint)}
}

func buildMembershipSet[T any](values []T) *membershipSet {
	s := newMembershipSet(len(values))
	for _, v := range values {
		s.insert(v)
	}
	return s
}

// insert adds v to the set and returns true if v was not already present.
func (s *membershipSet) insert(v any) bool {
	if isHashable(v) {
		return s.hashable.Insert(v)
	}
	if s.containsUnhashable(v) {
		return false
	}
	s.unhashable = append(s.unhashable, v)
	return true
}

func (s *membershipSet) contains(v any) bool {
	if isHashable(v) {
		return s.hashable.Contains(v)
	}
	return s.containsUnhashable(v)
}

func (s *membershipSet) containsUnhashable(v any) bool {
	return slices.ContainsFunc(s.unhashable, func(e any) bool {
		return reflect.DeepEqual(e, v)
	})
}

// SameValue is the equality used by Includes, IndexOf and Intersection: values that can be compared
// with == are compared that way (pointers by identity), other values (slices, maps, ...) are deeply compared.
func SameValue(a, b any) bool {
	if isHashable(a) && isHashable(b) {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

func isHashable(v any) bool {
	if v == nil {
		return true
	}
	return reflect.ValueOf(v).Comparable()
}

// ToSet returns a set containing the elements of a.
func ToSet[T comparable](a *Array[T]) *set.Set[T] {
	return set.From(a.values)
}
