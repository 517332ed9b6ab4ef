// Package encoding dispatches document decoding and encoding by format.
package encoding

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/viant/casefy/encoding/json"
	"github.com/viant/casefy/encoding/yaml"
)

// Format represents document format
type Format string

const (
	FormatAuto Format = ""
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses format name, yml is accepted as yaml
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return FormatAuto, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported format: %v", name)
}

// Detect returns JSON for documents starting with an object or array, YAML otherwise
func Detect(content []byte) Format {
	content = bytes.TrimSpace(content)
	if len(content) > 0 && (content[0] == '{' || content[0] == '[') {
		return FormatJSON
	}
	return FormatYAML
}

// Unmarshal decodes content, auto format is detected from content.
// JSON numbers keep their literal text so that integers beyond float64 precision survive re-encoding.
func Unmarshal(content []byte, format Format) (interface{}, Format, error) {
	if format == FormatAuto {
		format = Detect(content)
	}
	switch format {
	case FormatJSON:
		value, err := json.Unmarshal(content, json.WithNumberPolicy(json.ExactNumbers))
		return value, format, err
	case FormatYAML:
		value, err := yaml.Unmarshal(content)
		return value, format, err
	}
	return nil, format, fmt.Errorf("unsupported format: %v", format)
}

// Marshal encodes value, indent applies to JSON only
func Marshal(value interface{}, format Format, indent string) ([]byte, error) {
	switch format {
	case FormatJSON, FormatAuto:
		var opts []json.Option
		if indent != "" {
			opts = append(opts, json.WithIndent("", indent))
		}
		return json.Marshal(value, opts...)
	case FormatYAML:
		return yaml.Marshal(value)
	}
	return nil, fmt.Errorf("unsupported format: %v", format)
}
