package zen

import (
	"bytes"
	"fmt"
	"iter"

	"github.com/goccy/go-json"
	"github.com/inoxlang/zen/internal/utils"
)

// OrderedMap is an immutable map that iterates over its entries in insertion order.
// Set and Delete return a new map.
type OrderedMap[K comparable, V any] struct {
	keys    []K
	entries map[K]V
}

func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		entries: map[K]V{},
	}
}

// Set returns a map where key is associated with value. If the key is already present its position is kept.
func (m *OrderedMap[K, V]) Set(key K, value V) *OrderedMap[K, V] {
	newMap := &OrderedMap[K, V]{
		keys:    m.keys,
		entries: utils.CopyMap(m.entries),
	}

	if _, exists := m.entries[key]; !exists {
		newMap.keys = make([]K, len(m.keys), len(m.keys)+1)
		copy(newMap.keys, m.keys)
		newMap.keys = append(newMap.keys, key)
	}
	newMap.entries[key] = value
	return newMap
}

// Delete returns a map without key, m is returned if key is not present.
func (m *OrderedMap[K, V]) Delete(key K) *OrderedMap[K, V] {
	if _, exists := m.entries[key]; !exists {
		return m
	}

	newMap := &OrderedMap[K, V]{
		keys:    make([]K, 0, len(m.keys)-1),
		entries: utils.CopyMap(m.entries),
	}
	for _, k := range m.keys {
		if k != key {
			newMap.keys = append(newMap.keys, k)
		}
	}
	delete(newMap.entries, key)
	return newMap
}

func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	v, ok := m.entries[key]
	return v, ok
}

func (m *OrderedMap[K, V]) Has(key K) bool {
	_, ok := m.entries[key]
	return ok
}

func (m *OrderedMap[K, V]) Size() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *OrderedMap[K, V]) Keys() []K {
	return utils.CopySlice(m.keys)
}

// Values returns the values in insertion order.
func (m *OrderedMap[K, V]) Values() []V {
	values := make([]V, len(m.keys))
	for i, k := range m.keys {
		values[i] = m.entries[k]
	}
	return values
}

func (m *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.entries[k]) {
				return
			}
		}
	}
}

// MarshalJSON encodes the map as a JSON object whose properties are in insertion order,
// keys are converted to strings with fmt.Sprint.
func (m *OrderedMap[K, V]) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBufferString("{")

	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.MarshalNoEscape(fmt.Sprint(k))
		if err != nil {
			return nil, err
		}
		value, err := json.MarshalNoEscape(m.entries[k])
		if err != nil {
			return nil, fmt.Errorf("failed to marshal the value of %s: %w", key, err)
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
