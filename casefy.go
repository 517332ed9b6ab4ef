package casefy

import "context"

// TransformKeys renames input keys from one case style to another.
// Missing or unsupported styles are returned as ConfigError, problems found in the data
// are reported in Result.Error with the input echoed back.
func TransformKeys(input interface{}, from, to string, opts ...Option) (*Result, error) {
	return TransformKeysContext(context.Background(), input, from, to, opts...)
}

// TransformKeysContext is TransformKeys honoring ctx cancellation
func TransformKeysContext(ctx context.Context, input interface{}, from, to string, opts ...Option) (*Result, error) {
	service, err := New(from, to, opts...)
	if err != nil {
		return nil, err
	}
	return service.TransformContext(ctx, input).result(&service.options), nil
}
