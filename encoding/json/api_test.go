package json

import (
	"bytes"
	"strings"
	"testing"

	gojson "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/casefy/data"
)

func TestUnmarshal(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		options     []Option
		expect      interface{}
	}{
		{description: "null", input: "null", expect: nil},
		{description: "string", input: ` "a\"b" `, expect: `a"b`},
		{description: "bool", input: "true", expect: true},
		{description: "number", input: "30", expect: float64(30)},
		{description: "exact number", input: "1.50", options: []Option{WithNumberPolicy(ExactNumbers)}, expect: gojson.Number("1.50")},
		{description: "empty array", input: "[]", expect: []interface{}{}},
		{description: "empty object", input: "{}", expect: data.New()},
		{
			description: "mixed array",
			input:       `["string", 123, {"user_age": 30}, null, [false]]`,
			expect: []interface{}{
				"string", float64(123), data.New(data.Field{Key: "user_age", Value: float64(30)}), nil, []interface{}{false},
			},
		},
		{
			description: "nested object keeps order",
			input:       `{"z_key": 1, "a_key": {"y": "x", "b": [1, 2]}, "m": null}`,
			expect: data.New(
				data.Field{Key: "z_key", Value: float64(1)},
				data.Field{Key: "a_key", Value: data.New(
					data.Field{Key: "y", Value: "x"},
					data.Field{Key: "b", Value: []interface{}{float64(1), float64(2)}},
				)},
				data.Field{Key: "m", Value: nil},
			),
		},
		{
			description: "duplicate key last wins",
			input:       `{"a": 1, "b": 2, "a": 3}`,
			expect: data.New(
				data.Field{Key: "a", Value: float64(3)},
				data.Field{Key: "b", Value: float64(2)},
			),
		},
	}

	for _, testCase := range testCases {
		actual, err := Unmarshal([]byte(testCase.input), testCase.options...)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestUnmarshal_Error(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		options     []Option
	}{
		{description: "empty", input: "  "},
		{description: "invalid literal", input: "nul"},
		{description: "invalid number", input: "12x"},
		{description: "invalid value", input: `{"a": }`},
		{description: "truncated value", input: `{"a":`},
		{description: "bare word value", input: `{"a": x}`},
		{description: "truncated object", input: `{"a": 1`},
		{description: "trailing comma", input: `[1, ]`},
		{description: "infinity", input: "Infinity"},
		{description: "nan", input: "NaN"},
		{description: "explicit plus sign", input: "+1"},
		{description: "duplicate key", input: `{"a": 1, "a": 2}`, options: []Option{WithDuplicateKeyPolicy(ErrorOnDuplicate)}},
	}
	for _, testCase := range testCases {
		_, err := Unmarshal([]byte(testCase.input), testCase.options...)
		assert.Error(t, err, testCase.description)
		if testCase.options == nil {
			assert.ErrorIs(t, err, ErrInvalidJSON, testCase.description)
		}
	}
}

func TestMarshal(t *testing.T) {
	object := data.New(
		data.Field{Key: "userName", Value: "John"},
		data.Field{Key: "tags", Value: []interface{}{"a", data.New(data.Field{Key: "zip", Value: 1})}},
		data.Field{Key: "age", Value: float64(30)},
	)
	actual, err := Marshal(object)
	require.NoError(t, err)
	assert.Equal(t, `{"userName":"John","tags":["a",{"zip":1}],"age":30}`, string(actual))

	actual, err = Marshal(data.New(data.Field{Key: "b", Value: 1}, data.Field{Key: "a", Value: true}), WithIndent("", "  "))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"b\": 1,\n  \"a\": true\n}", string(actual))
}

func TestRoundTrip(t *testing.T) {
	input := `{"z_key":1.5,"a_key":{"y":"x","list":[1,"two",null,{"c":false}]},"m":null}`
	value, err := Decode(strings.NewReader(input))
	require.NoError(t, err)
	buffer := &bytes.Buffer{}
	require.NoError(t, Encode(buffer, value))
	assert.Equal(t, input+"\n", buffer.String())
}
