package casing

import (
	"errors"
	"fmt"
	"sync"
)

// ErrUnsupportedStyle is returned for style names without a transformer
var ErrUnsupportedStyle = errors.New("unsupported case style")

type (
	// Constructor creates a transformer
	Constructor func() Transformer

	builtin struct {
		name string
		new  Constructor
	}

	// Info describes a registered style
	Info struct {
		Name        string `json:"name" yaml:"name"`
		Description string `json:"description" yaml:"description"`
	}

	// Stats describes registry state
	Stats struct {
		Available int
		Instances int
		Custom    int
	}

	// Registry resolves case style names to transformers.
	// Built-in transformers are created lazily, once per name.
	Registry struct {
		builtins  []builtin
		instances *instanceCache
		mux       sync.RWMutex
		custom    map[string]Transformer
		order     []string
	}
)

// Default is the process wide registry
var Default = NewRegistry()

// NewRegistry creates a registry with camelCase, snake_case, PascalCase and kebab-case
func NewRegistry() *Registry {
	return &Registry{
		builtins: []builtin{
			{name: StyleCamel, new: Camel},
			{name: StyleSnake, new: Snake},
			{name: StylePascal, new: Pascal},
			{name: StyleKebab, new: Kebab},
		},
		instances: newInstanceCache(),
		custom:    make(map[string]Transformer),
	}
}

func (r *Registry) lookupCustom(name string) (Transformer, bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	t, ok := r.custom[name]
	return t, ok
}

func (r *Registry) lookupBuiltin(name string) (Constructor, bool) {
	for _, candidate := range r.builtins {
		if candidate.name == name {
			return candidate.new, true
		}
	}
	return nil, false
}

// Lookup returns transformer for supplied style, custom transformers take precedence
func (r *Registry) Lookup(name string) (Transformer, bool) {
	if t, ok := r.lookupCustom(name); ok {
		return t, true
	}
	fn, ok := r.lookupBuiltin(name)
	if !ok {
		return nil, false
	}
	return r.instances.GetOrCreate(name, fn), true
}

// Resolve returns transformer or ErrUnsupportedStyle
func (r *Registry) Resolve(name string) (Transformer, error) {
	if t, ok := r.Lookup(name); ok {
		return t, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedStyle, name)
}

// IsSupported returns true if style can be resolved
func (r *Registry) IsSupported(name string) bool {
	if _, ok := r.lookupCustom(name); ok {
		return true
	}
	_, ok := r.lookupBuiltin(name)
	return ok
}

// Register adds or replaces a custom transformer under its Style name
func (r *Registry) Register(t Transformer) error {
	if t == nil {
		return fmt.Errorf("transformer was nil")
	}
	name := t.Style()
	if name == "" {
		return fmt.Errorf("transformer style was empty")
	}
	r.mux.Lock()
	defer r.mux.Unlock()
	if _, ok := r.custom[name]; !ok {
		r.order = append(r.order, name)
	}
	r.custom[name] = t
	return nil
}

// Styles returns built-in styles followed by custom ones in registration order
func (r *Registry) Styles() []string {
	var result = make([]string, 0, len(r.builtins))
	for _, candidate := range r.builtins {
		result = append(result, candidate.name)
	}
	r.mux.RLock()
	defer r.mux.RUnlock()
	for _, name := range r.order {
		if _, ok := r.lookupBuiltin(name); ok {
			continue
		}
		result = append(result, name)
	}
	return result
}

// Info returns style name and description
func (r *Registry) Info(name string) (Info, bool) {
	t, ok := r.Lookup(name)
	if !ok {
		return Info{}, false
	}
	return Info{Name: t.Style(), Description: t.Description()}, true
}

// Detect returns first style matching input, custom transformers are checked first
func (r *Registry) Detect(input string) (string, bool) {
	r.mux.RLock()
	var custom = make([]Transformer, 0, len(r.order))
	for _, name := range r.order {
		custom = append(custom, r.custom[name])
	}
	r.mux.RUnlock()
	for _, t := range custom {
		if t.Detect(input) {
			return t.Style(), true
		}
	}
	for _, candidate := range r.builtins {
		t, _ := r.Lookup(candidate.name)
		if t.Detect(input) {
			return t.Style(), true
		}
	}
	return "", false
}

// Stats returns registry statistics
func (r *Registry) Stats() Stats {
	r.mux.RLock()
	custom := len(r.custom)
	r.mux.RUnlock()
	return Stats{
		Available: len(r.Styles()),
		Instances: r.instances.Len(),
		Custom:    custom,
	}
}

// Reset removes custom transformers and cached instances
func (r *Registry) Reset() {
	r.mux.Lock()
	r.custom = make(map[string]Transformer)
	r.order = nil
	r.mux.Unlock()
	r.instances.reset()
}

// Lookup returns transformer from Default registry
func Lookup(name string) (Transformer, bool) {
	return Default.Lookup(name)
}

// IsSupported checks Default registry
func IsSupported(name string) bool {
	return Default.IsSupported(name)
}

// Styles returns Default registry styles
func Styles() []string {
	return Default.Styles()
}

// Register adds transformer to Default registry
func Register(t Transformer) error {
	return Default.Register(t)
}

// Detect detects style with Default registry
func Detect(input string) (string, bool) {
	return Default.Detect(input)
}
