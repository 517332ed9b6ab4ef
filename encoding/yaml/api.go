package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/viant/casefy/data"
	"gopkg.in/yaml.v3"
)

// DefaultIndent is the default encoder indentation
const DefaultIndent = 2

const (
	// minAliasBudget nodes may always be expanded through aliases
	minAliasBudget = 10000
	// maxAliasBudget caps alias expansion regardless of document size
	maxAliasBudget = 1000000
)

// ErrExcessiveAliasing is returned when alias expansion exceeds the document budget
var ErrExcessiveAliasing = errors.New("document contains excessive aliasing")

// decoder converts yaml nodes, nodes reached through aliases are charged against budget
type decoder struct {
	budget     int
	aliasDepth int
}

func newDecoder(size int) *decoder {
	budget := size + minAliasBudget
	if budget > maxAliasBudget {
		budget = maxAliasBudget
	}
	return &decoder{budget: budget}
}

// Unmarshal decodes YAML document, mappings are returned as *data.Object in document order
func Unmarshal(content []byte) (interface{}, error) {
	node := &yaml.Node{}
	if err := yaml.Unmarshal(content, node); err != nil {
		return nil, fmt.Errorf("failed to decode YAML: %w", err)
	}
	ret, err := newDecoder(len(content)).decode(node)
	if err != nil {
		return nil, fmt.Errorf("failed to decode YAML: %w", err)
	}
	return ret, nil
}

// Decode reads and decodes YAML document
func Decode(reader io.Reader) (interface{}, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	return Unmarshal(content)
}

func (d *decoder) decode(node *yaml.Node) (interface{}, error) {
	if d.aliasDepth > 0 {
		if d.budget--; d.budget < 0 {
			return nil, fmt.Errorf("line %v: %w", node.Line, ErrExcessiveAliasing)
		}
	}
	switch node.Kind {
	case 0:
		return nil, nil
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return d.decode(node.Content[0])
	case yaml.AliasNode:
		if node.Alias == nil {
			return nil, fmt.Errorf("line %v: unknown alias %v", node.Line, node.Value)
		}
		d.aliasDepth++
		defer func() { d.aliasDepth-- }()
		return d.decode(node.Alias)
	case yaml.SequenceNode:
		items := make([]interface{}, 0, len(node.Content))
		for _, item := range node.Content {
			value, err := d.decode(item)
			if err != nil {
				return nil, err
			}
			items = append(items, value)
		}
		return items, nil
	case yaml.MappingNode:
		object := data.WithCapacity(len(node.Content) / 2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			if key.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %v: unsupported mapping key kind", key.Line)
			}
			value, err := d.decode(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			object.Set(key.Value, value)
		}
		return object, nil
	}
	var value interface{}
	if err := node.Decode(&value); err != nil {
		return nil, err
	}
	return value, nil
}

// Marshal encodes value, *data.Object fields are written in insertion order
func Marshal(value interface{}) ([]byte, error) {
	buffer := &bytes.Buffer{}
	if err := Encode(buffer, value, DefaultIndent); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// Encode writes encoded value with indent spaces
func Encode(writer io.Writer, value interface{}, indent int) error {
	encoder := yaml.NewEncoder(writer)
	if indent > 0 {
		encoder.SetIndent(indent)
	}
	if err := encoder.Encode(value); err != nil {
		return err
	}
	return encoder.Close()
}
