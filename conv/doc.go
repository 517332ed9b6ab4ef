// Package conv provides reflection-based textual conversion of primitive values.
// It covers strings, booleans, integer and float kinds including named types.
package conv
