package visitor

import (
	"fmt"
	"reflect"
	"sort"
)

// MapVisitorOf creates a visitor over map[string]E, keys are visited in sorted order
func MapVisitorOf[E any](aMap map[string]E) Visitor[string, E] {
	return func(f func(key string, element E) (bool, error)) error {
		keys := make([]string, 0, len(aMap))
		for k := range aMap {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			continueVisit, err := f(k, aMap[k])
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}
}

// AnyMapVisitorOf dynamically creates a visitor from any string keyed map value.
func AnyMapVisitorOf(value interface{}) (Visitor[string, interface{}], error) {
	switch actual := value.(type) {
	case map[string]interface{}:
		return MapVisitorOf[interface{}](actual), nil
	case map[string]string:
		return anyTypedMapVisitorOf[string](actual), nil
	case map[string]int:
		return anyTypedMapVisitorOf[int](actual), nil
	case map[string]bool:
		return anyTypedMapVisitorOf[bool](actual), nil
	case map[string]float64:
		return anyTypedMapVisitorOf[float64](actual), nil
	}
	val := reflect.ValueOf(value)
	if val.Kind() != reflect.Map || val.Type().Key().Kind() != reflect.String {
		return nil, fmt.Errorf("expected string keyed map, got %T", value)
	}
	visitor := &AnyMapVisitor{data: val}
	return visitor.Visit, nil
}

func anyTypedMapVisitorOf[E any](aMap map[string]E) Visitor[string, interface{}] {
	visit := MapVisitorOf[E](aMap)
	return func(f func(key string, element interface{}) (bool, error)) error {
		return visit(func(key string, element E) (bool, error) {
			return f(key, element)
		})
	}
}

// AnyMapVisitor defines reflection based map visitor
type AnyMapVisitor struct {
	data reflect.Value
}

// Visit iterates over the map via reflection in sorted key order and calls f for each entry.
func (v *AnyMapVisitor) Visit(f func(key string, element interface{}) (bool, error)) error {
	keys := v.data.MapKeys()
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	for _, key := range keys {
		continueVisit, err := f(key.String(), v.data.MapIndex(key).Interface())
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}
