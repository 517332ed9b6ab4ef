package visitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapVisitorOf(t *testing.T) {
	var aMap = map[string]bool{
		"def": true,
		"abc": false}

	{
		var keys []string
		cloned := make(map[string]bool)
		visit := MapVisitorOf[bool](aMap)
		err := visit(func(key string, element bool) (bool, error) {
			keys = append(keys, key)
			cloned[key] = element
			return true, nil
		})
		assert.Nil(t, err)
		assert.EqualValues(t, aMap, cloned)
		assert.EqualValues(t, []string{"abc", "def"}, keys)
	}
	{
		visit, err := AnyMapVisitorOf(aMap)
		assert.Nil(t, err)
		cloned := make(map[string]bool)
		_ = visit(func(key string, element interface{}) (bool, error) {
			cloned[key] = element.(bool)
			return true, nil
		})
		assert.EqualValues(t, aMap, cloned)
	}
	{
		type Status string
		sMap := map[Status]int{"b": 2, "a": 1}
		visit, err := AnyMapVisitorOf(sMap)
		assert.Nil(t, err)
		var keys []string
		_ = visit(func(key string, element interface{}) (bool, error) {
			keys = append(keys, key)
			return true, nil
		})
		assert.EqualValues(t, []string{"a", "b"}, keys)
	}
	{
		_, err := AnyMapVisitorOf(map[int]int{1: 1})
		assert.NotNil(t, err)
	}
}
