// Package yaml decodes YAML documents into key ordered generic values and encodes them back.
package yaml
