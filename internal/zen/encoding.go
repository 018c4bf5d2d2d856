package zen

import (
	"github.com/goccy/go-json"
	"github.com/inoxlang/zen/internal/utils"
)

// MarshalJSON encodes the array as a JSON array.
func (a *Array[T]) MarshalJSON() ([]byte, error) {
	return json.MarshalNoEscape(utils.EmptySliceIfNil(a.values))
}

// UnmarshalJSON decodes a JSON array. Decoding constructs the array: it should only be called on
// a zero Array that is not shared yet. null is decoded as an empty array.
func (a *Array[T]) UnmarshalJSON(data []byte) error {
	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}

	a.values = utils.EmptySliceIfNil(values)
	a.membership.Store(nil)
	return nil
}

// MarshalYAML encodes the array as a YAML sequence.
func (a *Array[T]) MarshalYAML() (any, error) {
	return utils.EmptySliceIfNil(a.values), nil
}

// UnmarshalYAML decodes a YAML sequence, the same restrictions as UnmarshalJSON apply.
func (a *Array[T]) UnmarshalYAML(unmarshal func(any) error) error {
	var values []T
	if err := unmarshal(&values); err != nil {
		return err
	}

	a.values = utils.EmptySliceIfNil(values)
	a.membership.Store(nil)
	return nil
}
