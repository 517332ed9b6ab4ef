package visitor

import (
	"fmt"
	"reflect"
)

// SliceVisitorOf creates a visitor over []E, the key is the slice index
func SliceVisitorOf[E any](slice []E) Visitor[int, E] {
	return func(f func(key int, element E) (bool, error)) error {
		for i, elem := range slice {
			continueVisit, err := f(i, elem)
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

// AnySliceVisitorOf dynamically creates a visitor from any slice or array value.
func AnySliceVisitorOf(value interface{}) (Visitor[int, interface{}], error) {
	switch actual := value.(type) {
	case []interface{}:
		return SliceVisitorOf[interface{}](actual), nil
	case []string:
		return anyTypedSliceVisitorOf[string](actual), nil
	case []int:
		return anyTypedSliceVisitorOf[int](actual), nil
	case []float64:
		return anyTypedSliceVisitorOf[float64](actual), nil
	case []bool:
		return anyTypedSliceVisitorOf[bool](actual), nil
	case []map[string]interface{}:
		return anyTypedSliceVisitorOf[map[string]interface{}](actual), nil
	}
	val := reflect.ValueOf(value)
	if val.Kind() != reflect.Slice && val.Kind() != reflect.Array {
		return nil, fmt.Errorf("expected slice, got %T", value)
	}
	visitor := &AnySliceVisitor{data: val}
	return visitor.Visit, nil
}

func anyTypedSliceVisitorOf[E any](slice []E) Visitor[int, interface{}] {
	visit := SliceVisitorOf[E](slice)
	return func(f func(key int, element interface{}) (bool, error)) error {
		return visit(func(key int, element E) (bool, error) {
			return f(key, element)
		})
	}
}

// AnySliceVisitor visits slices of any type.
type AnySliceVisitor struct {
	data reflect.Value
}

// Visit iterates over any slice type via reflection.
func (v *AnySliceVisitor) Visit(f func(key int, element interface{}) (bool, error)) error {
	for i := 0; i < v.data.Len(); i++ {
		continueVisit, err := f(i, v.data.Index(i).Interface())
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}

// Len returns slice, array or map length, 0 for other values
func Len(value interface{}) int {
	switch actual := value.(type) {
	case []interface{}:
		return len(actual)
	case map[string]interface{}:
		return len(actual)
	}
	val := reflect.ValueOf(value)
	switch val.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return val.Len()
	}
	return 0
}
