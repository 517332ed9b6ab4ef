// Package data defines Object, an insertion ordered string keyed mapping used to carry
// JSON and YAML documents without losing key order.
package data
