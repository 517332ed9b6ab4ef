// Package json decodes JSON documents into key ordered generic values and encodes them back.
//
// Decoding is backed by gojay, encoding by goccy/go-json.
package json
