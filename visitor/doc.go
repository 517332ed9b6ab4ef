// Package visitor offers visitors for JSON-like containers.
// It classifies values into null, primitive, sequence, mapping and opaque kinds,
// and provides callback-based iteration over ordered objects, string keyed maps and slices.
package visitor
