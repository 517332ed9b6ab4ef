package json

import (
	"errors"
	"fmt"
	"io"

	gojson "github.com/goccy/go-json"
)

// ErrInvalidJSON is returned for content that is not a valid JSON document
var ErrInvalidJSON = errors.New("invalid JSON")

// Unmarshal decodes JSON into nil, bool, float64, string, []interface{} or *data.Object.
// Objects keep document key order, content has to be a single valid JSON value.
func Unmarshal(content []byte, opts ...Option) (interface{}, error) {
	if !gojson.Valid(content) {
		return nil, fmt.Errorf("failed to decode JSON: %w", ErrInvalidJSON)
	}
	ret, err := decodeValue(content, resolveOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}
	return ret, nil
}

// Decode reads and decodes JSON document
func Decode(reader io.Reader, opts ...Option) (interface{}, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	return Unmarshal(content, opts...)
}

// Marshal encodes value, *data.Object fields are written in insertion order
func Marshal(value interface{}, opts ...Option) ([]byte, error) {
	options := resolveOptions(opts)
	if options.Indent != "" || options.Prefix != "" {
		return gojson.MarshalIndent(value, options.Prefix, options.Indent)
	}
	return gojson.Marshal(value)
}

// Encode writes encoded value followed by a new line
func Encode(writer io.Writer, value interface{}, opts ...Option) error {
	content, err := Marshal(value, opts...)
	if err != nil {
		return err
	}
	_, err = writer.Write(append(content, '\n'))
	return err
}
