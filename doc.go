// Package casefy renames keys of nested JSON-like values between case styles.
//
// A value is walked depth first: mappings (*data.Object, map[string]T) get their keys
// renamed when a key matches the source style, sequences are walked element by element,
// primitives are optionally converted to text, anything else is passed through as is.
//
//	result, err := casefy.TransformKeys(input, casing.StyleSnake, casing.StyleCamel,
//		casefy.WithExcludeFields("metadata"),
//		casefy.WithFieldMappings(map[string]string{"user_name": "fullName"}),
//	)
//
// Configuration errors (missing or unsupported styles) are returned as *ConfigError.
// Problems found while walking the data (cycles, excessive depth) never fail the call:
// the input is echoed back with zero transformed keys and a diagnostic message.
//
// Inputs are never modified, every traversed mapping and sequence is rebuilt.
// Cyclic inputs are detected and reported instead of exhausting the stack.
package casefy
