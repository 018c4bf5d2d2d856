package zen

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dashboard struct {
	Title   string         `json:"title" yaml:"title"`
	Widgets *Array[string] `json:"widgets" yaml:"widgets"`
}

func TestArrayJSON(t *testing.T) {

	t.Run("marshal", func(t *testing.T) {
		data, err := json.Marshal(dashboard{Title: "sales", Widgets: Of("a", "b")})
		require.NoError(t, err)
		assert.Equal(t, `{"title":"sales","widgets":["a","b"]}`, string(data))

		data, err = json.Marshal(Empty[int]())
		require.NoError(t, err)
		assert.Equal(t, `[]`, string(data))
	})

	t.Run("marshal a zero value", func(t *testing.T) {
		data, err := json.Marshal(new(Array[int]))
		require.NoError(t, err)
		assert.Equal(t, `[]`, string(data))

		data, err = json.Marshal(dashboard{Widgets: &Array[string]{}})
		require.NoError(t, err)
		assert.Equal(t, `{"title":"","widgets":[]}`, string(data))
	})

	t.Run("unmarshal", func(t *testing.T) {
		var d dashboard
		err := json.Unmarshal([]byte(`{"title":"sales","widgets":["x","y"]}`), &d)
		require.NoError(t, err)
		require.NotNil(t, d.Widgets)

		assert.Equal(t, []string{"x", "y"}, d.Widgets.ArrayView())
		assert.True(t, d.Widgets.Includes("x"))
	})

	t.Run("unmarshal null", func(t *testing.T) {
		var a Array[int]
		require.NoError(t, a.UnmarshalJSON([]byte(`null`)))
		assert.True(t, a.IsEmpty())
		assert.NotNil(t, a.ArrayView())
	})

	t.Run("unmarshal invalid elements", func(t *testing.T) {
		var a Array[int]
		assert.Error(t, a.UnmarshalJSON([]byte(`["a"]`)))
	})
}

func TestArrayYAML(t *testing.T) {

	t.Run("a zero value is marshaled like an empty array", func(t *testing.T) {
		zeroValue, err := yaml.Marshal(new(Array[int]))
		require.NoError(t, err)

		empty, err := yaml.Marshal(Empty[int]())
		require.NoError(t, err)
		assert.Equal(t, string(empty), string(zeroValue))
	})

	t.Run("marshal", func(t *testing.T) {
		data, err := yaml.Marshal(Of(1, 2))
		require.NoError(t, err)
		assert.Equal(t, "- 1\n- 2\n", string(data))
	})

	t.Run("unmarshal", func(t *testing.T) {
		var d dashboard
		err := yaml.Unmarshal([]byte("title: sales\nwidgets: [a, b]\n"), &d)
		require.NoError(t, err)
		require.NotNil(t, d.Widgets)

		assert.Equal(t, "sales", d.Title)
		assert.Equal(t, []string{"a", "b"}, d.Widgets.ArrayView())
	})

	t.Run("round trip", func(t *testing.T) {
		data, err := yaml.Marshal(dashboard{Title: "t", Widgets: Of("w1", "w2")})
		require.NoError(t, err)

		var d dashboard
		require.NoError(t, yaml.Unmarshal(data, &d))
		assert.Equal(t, []string{"w1", "w2"}, d.Widgets.ArrayView())
	})
}
