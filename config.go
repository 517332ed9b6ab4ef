package casefy

import (
	"fmt"
	"os"

	"github.com/viant/casefy/casing"
	"github.com/viant/tagly/format/text"
	"gopkg.in/yaml.v3"
)

// StyleConfig defines an extra case style backed by a tagly case format, i.e. upperUnderscore
type StyleConfig struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Format      string `json:"format" yaml:"format"`
}

// Config represents file based transformation settings, JSON documents are accepted as well
type Config struct {
	From          string            `json:"from,omitempty" yaml:"from,omitempty"`
	To            string            `json:"to,omitempty" yaml:"to,omitempty"`
	Deep          *bool             `json:"deep,omitempty" yaml:"deep,omitempty"`
	Arrays        *bool             `json:"arrays,omitempty" yaml:"arrays,omitempty"`
	PreserveTypes *bool             `json:"preserveTypes,omitempty" yaml:"preserveTypes,omitempty"`
	FieldMappings map[string]string `json:"fieldMappings,omitempty" yaml:"fieldMappings,omitempty"`
	ExcludeFields []string          `json:"excludeFields,omitempty" yaml:"excludeFields,omitempty"`
	IncludeFields []string          `json:"includeFields,omitempty" yaml:"includeFields,omitempty"`
	MaxDepth      *int              `json:"maxDepth,omitempty" yaml:"maxDepth,omitempty"`
	Styles        []StyleConfig     `json:"styles,omitempty" yaml:"styles,omitempty"`

	registry *casing.Registry
}

// Registry returns registry with built-in and configured styles, nil without configured styles
func (c *Config) Registry() *casing.Registry {
	return c.registry
}

func (c *Config) init() error {
	if len(c.Styles) == 0 {
		return nil
	}
	registry := casing.NewRegistry()
	for _, style := range c.Styles {
		transformer, err := casing.FromCaseFormat(style.Name, style.Description, text.CaseFormat(style.Format))
		if err != nil {
			return fmt.Errorf("invalid style %v: %w", style.Name, err)
		}
		if err = registry.Register(transformer); err != nil {
			return err
		}
	}
	c.registry = registry
	return nil
}

// Options returns options for the defined settings
func (c *Config) Options() []Option {
	var ret []Option
	if c.Deep != nil {
		ret = append(ret, WithDeep(*c.Deep))
	}
	if c.Arrays != nil {
		ret = append(ret, WithArrays(*c.Arrays))
	}
	if c.PreserveTypes != nil {
		ret = append(ret, WithPreserveTypes(*c.PreserveTypes))
	}
	if len(c.FieldMappings) > 0 {
		ret = append(ret, WithFieldMappings(c.FieldMappings))
	}
	if len(c.ExcludeFields) > 0 {
		ret = append(ret, WithExcludeFields(c.ExcludeFields...))
	}
	if c.IncludeFields != nil {
		ret = append(ret, WithIncludeFields(c.IncludeFields...))
	}
	if c.MaxDepth != nil {
		ret = append(ret, WithMaxDepth(*c.MaxDepth))
	}
	if c.registry != nil {
		ret = append(ret, WithRegistry(c.registry))
	}
	return ret
}

// ParseConfig parses YAML or JSON config
func ParseConfig(content []byte) (*Config, error) {
	ret := &Config{}
	if err := yaml.Unmarshal(content, ret); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := ret.init(); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return ret, nil
}

// LoadConfig loads config from YAML or JSON file
func LoadConfig(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %v: %w", path, err)
	}
	ret, err := ParseConfig(content)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	return ret, nil
}
