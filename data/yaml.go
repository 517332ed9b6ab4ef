package data

import (
	"gopkg.in/yaml.v3"
)

// MarshalYAML encodes fields as mapping node in insertion order
func (o *Object) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, field := range o.Fields() {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: field.Key}
		value := &yaml.Node{}
		if err := value.Encode(field.Value); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, key, value)
	}
	return node, nil
}
