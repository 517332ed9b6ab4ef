package conv

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	type Level int
	testCases := []struct {
		name     string
		src      interface{}
		expected string
		ok       bool
	}{
		{"nil", nil, "null", true},
		{"string", "hello", "hello", true},
		{"int", 123, "123", true},
		{"negative int64", int64(-5), "-5", true},
		{"uint8", uint8(7), "7", true},
		{"bool true", true, "true", true},
		{"bool false", false, "false", true},
		{"float", 123.456, "123.456", true},
		{"whole float", float64(30), "30", true},
		{"float32", float32(1.5), "1.5", true},
		{"named int", Level(3), "3", true},
		{"json number", json.Number("12.50"), "12.50", true},
		{"time", time.Time{}, "", false},
		{"slice", []int{1}, "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, ok := Text(tc.src)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, actual)
		})
	}
}
