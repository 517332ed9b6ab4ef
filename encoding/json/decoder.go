package json

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/francoispqt/gojay"
	gojson "github.com/goccy/go-json"
	"github.com/viant/casefy/data"
)

type (
	objectDecoder struct {
		options *Options
		object  *data.Object
	}

	arrayDecoder struct {
		options *Options
		items   []interface{}
	}
)

// UnmarshalJSONObject implements gojay.UnmarshalerJSONObject
func (d *objectDecoder) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	raw := gojay.EmbeddedJSON{}
	if err := dec.EmbeddedJSON(&raw); err != nil {
		return err
	}
	if d.options.DuplicateKeyPolicy == ErrorOnDuplicate && d.object.Has(key) {
		return fmt.Errorf("duplicate key: %v", key)
	}
	value, err := decodeValue(raw, d.options)
	if err != nil {
		return fmt.Errorf("%v: %w", key, err)
	}
	d.object.Set(key, value)
	return nil
}

// NKeys implements gojay.UnmarshalerJSONObject, zero decodes all keys
func (d *objectDecoder) NKeys() int {
	return 0
}

// UnmarshalJSONArray implements gojay.UnmarshalerJSONArray
func (d *arrayDecoder) UnmarshalJSONArray(dec *gojay.Decoder) error {
	raw := gojay.EmbeddedJSON{}
	if err := dec.EmbeddedJSON(&raw); err != nil {
		return err
	}
	value, err := decodeValue(raw, d.options)
	if err != nil {
		return fmt.Errorf("[%v]: %w", len(d.items), err)
	}
	d.items = append(d.items, value)
	return nil
}

func decodeValue(raw []byte, options *Options) (interface{}, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, fmt.Errorf("unexpected end of JSON input")
	}
	switch raw[0] {
	case '{':
		decoder := &objectDecoder{options: options, object: data.New()}
		if err := gojay.UnmarshalJSONObject(raw, decoder); err != nil {
			return nil, err
		}
		return decoder.object, nil
	case '[':
		decoder := &arrayDecoder{options: options, items: []interface{}{}}
		if err := gojay.UnmarshalJSONArray(raw, decoder); err != nil {
			return nil, err
		}
		return decoder.items, nil
	case '"':
		var text string
		if err := gojay.Unmarshal(raw, &text); err != nil {
			return nil, err
		}
		return text, nil
	case 't', 'f':
		var flag bool
		if err := gojay.Unmarshal(raw, &flag); err != nil {
			return nil, err
		}
		return flag, nil
	case 'n':
		if string(raw) != "null" {
			return nil, fmt.Errorf("invalid literal: %s", raw)
		}
		return nil, nil
	}
	literal := string(raw)
	number, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number: %s", raw)
	}
	if options.NumberPolicy == ExactNumbers {
		return gojson.Number(literal), nil
	}
	return number, nil
}
