package casefy

import "github.com/viant/casefy/casing"

// DefaultMaxDepth is the default nesting ceiling
const DefaultMaxDepth = 10000

type (
	//Options represents resolved traversal options
	Options struct {
		//Deep descends into nested mappings
		Deep bool
		//Arrays walks sequence elements
		Arrays bool
		//PreserveTypes keeps primitive values, otherwise they are converted to text
		PreserveTypes bool
		//FieldMappings explicit key renames, bypassing case detection
		FieldMappings map[string]string
		//ExcludeFields keys copied verbatim without descending into their values
		ExcludeFields map[string]bool
		//IncludeFields whitelist of keys eligible for renaming, nil means all keys
		IncludeFields map[string]bool
		//MaxDepth nesting ceiling, zero or less disables the check
		MaxDepth int

		logger   Logger
		registry *casing.Registry
	}

	//Option represents traversal option
	Option func(o *Options)
)

func (o *Options) excluded(key string) bool {
	return o.ExcludeFields[key]
}

func (o *Options) included(key string) bool {
	if o.IncludeFields == nil {
		return true
	}
	return o.IncludeFields[key]
}

func (o *Options) mapped(key string) (string, bool) {
	name, ok := o.FieldMappings[key]
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

func (o *Options) clone() Options {
	ret := *o
	ret.FieldMappings = copyMapping(o.FieldMappings)
	ret.ExcludeFields = copySet(o.ExcludeFields)
	ret.IncludeFields = copySet(o.IncludeFields)
	return ret
}

// NewOptions creates options with defaults: deep, arrays and preserved types
func NewOptions(opts ...Option) *Options {
	ret := &Options{
		Deep:          true,
		Arrays:        true,
		PreserveTypes: true,
		MaxDepth:      DefaultMaxDepth,
		logger:        NopLogger{},
		registry:      casing.Default,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(ret)
		}
	}
	return ret
}

//WithDeep sets nested mapping descent
func WithDeep(deep bool) Option {
	return func(o *Options) {
		o.Deep = deep
	}
}

//WithArrays sets sequence elements traversal
func WithArrays(arrays bool) Option {
	return func(o *Options) {
		o.Arrays = arrays
	}
}

//WithPreserveTypes sets primitive type preservation
func WithPreserveTypes(preserve bool) Option {
	return func(o *Options) {
		o.PreserveTypes = preserve
	}
}

//WithFieldMappings sets explicit key renames, empty target names are ignored
func WithFieldMappings(mappings map[string]string) Option {
	return func(o *Options) {
		if o.FieldMappings == nil {
			o.FieldMappings = make(map[string]string, len(mappings))
		}
		for k, v := range mappings {
			o.FieldMappings[k] = v
		}
	}
}

//WithExcludeFields adds excluded keys
func WithExcludeFields(fields ...string) Option {
	return func(o *Options) {
		if o.ExcludeFields == nil {
			o.ExcludeFields = make(map[string]bool, len(fields))
		}
		for _, field := range fields {
			o.ExcludeFields[field] = true
		}
	}
}

//WithIncludeFields adds whitelisted keys, calling it with no fields still installs an empty whitelist
func WithIncludeFields(fields ...string) Option {
	return func(o *Options) {
		if o.IncludeFields == nil {
			o.IncludeFields = make(map[string]bool, len(fields))
		}
		for _, field := range fields {
			o.IncludeFields[field] = true
		}
	}
}

//WithMaxDepth sets nesting ceiling
func WithMaxDepth(depth int) Option {
	return func(o *Options) {
		o.MaxDepth = depth
	}
}

//WithLogger sets logger receiving renamed keys
func WithLogger(logger Logger) Option {
	return func(o *Options) {
		if logger == nil {
			logger = NopLogger{}
		}
		o.logger = logger
	}
}

//WithRegistry sets case style registry
func WithRegistry(registry *casing.Registry) Option {
	return func(o *Options) {
		if registry != nil {
			o.registry = registry
		}
	}
}

func copyMapping(src map[string]string) map[string]string {
	if src == nil {
		return nil
	}
	ret := make(map[string]string, len(src))
	for k, v := range src {
		ret[k] = v
	}
	return ret
}

func copySet(src map[string]bool) map[string]bool {
	if src == nil {
		return nil
	}
	ret := make(map[string]bool, len(src))
	for k, v := range src {
		ret[k] = v
	}
	return ret
}
