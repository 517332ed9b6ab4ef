package data

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestObject(t *testing.T) {
	object := New(Field{Key: "b", Value: 1}, Field{Key: "a", Value: 2})
	object.Set("c", 3)
	object.Set("b", 10)
	assert.Equal(t, []string{"b", "a", "c"}, object.Keys())
	assert.Equal(t, 3, object.Len())

	value, ok := object.Get("b")
	require.True(t, ok)
	assert.Equal(t, 10, value)
	assert.False(t, object.Has("z"))

	assert.True(t, object.Delete("a"))
	assert.False(t, object.Delete("a"))
	assert.Equal(t, []string{"b", "c"}, object.Keys())
	value, _ = object.Get("c")
	assert.Equal(t, 3, value)

	clone := object.Clone()
	clone.Set("d", 4)
	assert.Equal(t, 2, object.Len())
	assert.Equal(t, map[string]interface{}{"b": 10, "c": 3}, object.Map())

	var visited []string
	object.Range(func(key string, value interface{}) bool {
		visited = append(visited, key)
		return false
	})
	assert.Equal(t, []string{"b"}, visited)

	var empty *Object
	assert.Equal(t, 0, empty.Len())
	assert.Empty(t, empty.Keys())
}

func TestObject_MarshalJSON(t *testing.T) {
	var useCases = []struct {
		description string
		value       interface{}
		expect      string
	}{
		{
			description: "ordered keys",
			value:       New(Field{Key: "z", Value: 1}, Field{Key: "a", Value: "x"}),
			expect:      `{"z":1,"a":"x"}`,
		},
		{
			description: "nested",
			value: New(Field{Key: "user", Value: New(Field{Key: "b", Value: true}, Field{Key: "a", Value: nil})},
				Field{Key: "list", Value: []interface{}{1, New(Field{Key: "k", Value: "v"})}}),
			expect: `{"user":{"b":true,"a":null},"list":[1,{"k":"v"}]}`,
		},
		{
			description: "empty",
			value:       New(),
			expect:      `{}`,
		},
	}
	for _, useCase := range useCases {
		actual, err := json.Marshal(useCase.value)
		require.NoError(t, err, useCase.description)
		assert.Equal(t, useCase.expect, string(actual), useCase.description)
	}
}

func TestObject_MarshalYAML(t *testing.T) {
	object := New(Field{Key: "z", Value: 1}, Field{Key: "a", Value: New(Field{Key: "y", Value: "x"})})
	actual, err := yaml.Marshal(object)
	require.NoError(t, err)
	assert.Equal(t, "z: 1\na:\n    y: x\n", string(actual))
}
