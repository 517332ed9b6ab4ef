package casefy

import (
	"context"
	"errors"

	"github.com/viant/casefy/casing"
)

type (
	//Service renames keys between two fixed case styles
	Service struct {
		from    casing.Transformer
		to      casing.Transformer
		options Options
	}

	//Stats represents service configuration snapshot
	Stats struct {
		FromCase string
		ToCase   string
		Options  Options
		Styles   []string
	}
)

// Transform renames value keys, data problems are reported in the outcome
func (s *Service) Transform(value interface{}) *Outcome {
	return s.TransformContext(context.Background(), value)
}

// TransformContext renames value keys, it stops between keys once ctx is done
func (s *Service) TransformContext(ctx context.Context, value interface{}) *Outcome {
	options := s.options
	ret := &Outcome{FromCase: s.from.Style(), ToCase: s.to.Style()}
	data, count, err := newTraversal(ctx, s.from, s.to, &options).run(value)
	if err != nil {
		var dataErr *DataError
		if !errors.As(err, &dataErr) {
			err = &DataError{Cause: err}
		}
		ret.Data = value
		ret.Error = err.Error()
		ret.Err = err
		return ret
	}
	ret.Data = data
	ret.TransformedKeys = count
	ret.Success = true
	return ret
}

// Stats returns service configuration
func (s *Service) Stats() Stats {
	return Stats{
		FromCase: s.from.Style(),
		ToCase:   s.to.Style(),
		Options:  s.options.clone(),
		Styles:   s.options.registry.Styles(),
	}
}

// From returns source transformer
func (s *Service) From() casing.Transformer {
	return s.from
}

// To returns target transformer
func (s *Service) To() casing.Transformer {
	return s.to
}

// New creates a service, it returns ConfigError for missing or unsupported styles
func New(from, to string, opts ...Option) (*Service, error) {
	options := NewOptions(opts...)
	if from == "" || to == "" {
		return nil, missingStyleError()
	}
	source, err := options.registry.Resolve(from)
	if err != nil {
		return nil, unsupportedStyleError(SideSource, from, err)
	}
	target, err := options.registry.Resolve(to)
	if err != nil {
		return nil, unsupportedStyleError(SideTarget, to, err)
	}
	return &Service{from: source, to: target, options: options.clone()}, nil
}
