package json

type optionFn func(*Options)

func (o optionFn) apply(opts *Options) { o(opts) }

func WithNumberPolicy(policy NumberPolicy) Option {
	return optionFn(func(o *Options) { o.NumberPolicy = policy })
}

func WithDuplicateKeyPolicy(policy DuplicateKeyPolicy) Option {
	return optionFn(func(o *Options) { o.DuplicateKeyPolicy = policy })
}

// WithIndent enables indented output
func WithIndent(prefix, indent string) Option {
	return optionFn(func(o *Options) {
		o.Prefix = prefix
		o.Indent = indent
	})
}

func resolveOptions(opts []Option) *Options {
	ret := &Options{}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(ret)
		}
	}
	return ret
}
