package visitor

import (
	"reflect"

	"github.com/viant/casefy/data"
)

// Kind represents value shape
type Kind int

const (
	//KindOpaque value is passed through as is, i.e. time.Time, struct, func
	KindOpaque Kind = iota
	KindNull
	KindPrimitive
	KindSequence
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindPrimitive:
		return "primitive"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	}
	return "opaque"
}

// KindOf returns value kind
func KindOf(value interface{}) Kind {
	switch actual := value.(type) {
	case nil:
		return KindNull
	case string, bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return KindPrimitive
	case []interface{}:
		if actual == nil {
			return KindOpaque
		}
		return KindSequence
	case map[string]interface{}:
		if actual == nil {
			return KindOpaque
		}
		return KindMapping
	case *data.Object:
		if actual == nil {
			return KindNull
		}
		return KindMapping
	case []byte:
		return KindOpaque
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return KindPrimitive
	case reflect.Slice:
		if rValue.IsNil() || rValue.Type().Elem().Kind() == reflect.Uint8 {
			return KindOpaque
		}
		return KindSequence
	case reflect.Array:
		return KindSequence
	case reflect.Map:
		if rValue.IsNil() || rValue.Type().Key().Kind() != reflect.String {
			return KindOpaque
		}
		return KindMapping
	}
	return KindOpaque
}
