package conv

import (
	"reflect"
	"strconv"
)

// NullText is textual form of nil
const NullText = "null"

// Text returns textual representation of nil or primitive value, false for any other value
func Text(value interface{}) (string, bool) {
	switch actual := value.(type) {
	case nil:
		return NullText, true
	case string:
		return actual, true
	case bool:
		return strconv.FormatBool(actual), true
	case int:
		return strconv.Itoa(actual), true
	case int64:
		return strconv.FormatInt(actual, 10), true
	case float64:
		return strconv.FormatFloat(actual, 'f', -1, 64), true
	}
	srcValue := reflect.ValueOf(value)
	switch srcValue.Kind() {
	case reflect.String:
		return srcValue.String(), true
	case reflect.Bool:
		return strconv.FormatBool(srcValue.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(srcValue.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(srcValue.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(srcValue.Float(), 'f', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(srcValue.Float(), 'f', -1, 64), true
	}
	return "", false
}
