package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/viant/casefy"
	"github.com/viant/casefy/encoding"
)

type transformInput struct {
	Document      string            `json:"document"                 jsonschema:"JSON or YAML document whose keys are renamed"`
	Format        string            `json:"format,omitempty"         jsonschema:"Document format: json or yaml. Detected from content when omitted"`
	From          string            `json:"from,omitempty"           jsonschema:"Source case style. Defaults to CASEFY_DEFAULT_FROM"`
	To            string            `json:"to,omitempty"             jsonschema:"Target case style. Defaults to CASEFY_DEFAULT_TO"`
	Deep          *bool             `json:"deep,omitempty"           jsonschema:"Descend into nested objects (default true)"`
	Arrays        *bool             `json:"arrays,omitempty"         jsonschema:"Process array elements (default true)"`
	PreserveTypes *bool             `json:"preserve_types,omitempty" jsonschema:"Keep primitive value types instead of converting them to text"`
	FieldMappings map[string]string `json:"field_mappings,omitempty" jsonschema:"Explicit key renames used verbatim"`
	ExcludeFields []string          `json:"exclude_fields,omitempty" jsonschema:"Keys copied as is without descending into their values"`
	IncludeFields []string          `json:"include_fields,omitempty" jsonschema:"Only these keys are eligible for renaming"`
}

type transformOutput struct {
	Format          string `json:"format"`
	From            string `json:"from"`
	To              string `json:"to"`
	TransformedKeys int    `json:"transformed_keys"`
	Document        string `json:"document,omitempty"`
}

func handleTransformKeys(ctx context.Context, _ *mcp.CallToolRequest, input transformInput) (*mcp.CallToolResult, transformOutput, error) {
	if input.Document == "" {
		return errResult(fmt.Errorf("document is required")), transformOutput{}, nil
	}
	if len(input.Document) > cfg.MaxInlineSize {
		return errResult(fmt.Errorf("document exceeds %v bytes", cfg.MaxInlineSize)), transformOutput{}, nil
	}
	format, err := encoding.ParseFormat(input.Format)
	if err != nil {
		return errResult(err), transformOutput{}, nil
	}
	value, format, err := encoding.Unmarshal([]byte(input.Document), format)
	if err != nil {
		return errResult(err), transformOutput{}, nil
	}

	from, to := input.From, input.To
	if from == "" {
		from = cfg.DefaultFrom
	}
	if to == "" {
		to = cfg.DefaultTo
	}
	result, err := casefy.TransformKeysContext(ctx, value, from, to, buildOptions(input)...)
	if err != nil {
		return errResult(err), transformOutput{}, nil
	}
	if result.Err != nil {
		return errResult(result.Err), transformOutput{}, nil
	}
	content, err := encoding.Marshal(result.Data, format, cfg.Indent)
	if err != nil {
		return errResult(err), transformOutput{}, nil
	}
	return nil, transformOutput{
		Format:          string(format),
		From:            result.From,
		To:              result.To,
		TransformedKeys: result.TransformedKeys,
		Document:        string(content),
	}, nil
}

func buildOptions(input transformInput) []casefy.Option {
	preserveTypes := cfg.PreserveTypes
	if input.PreserveTypes != nil {
		preserveTypes = *input.PreserveTypes
	}
	opts := []casefy.Option{
		casefy.WithPreserveTypes(preserveTypes),
		casefy.WithMaxDepth(cfg.MaxDepth),
	}
	if input.Deep != nil {
		opts = append(opts, casefy.WithDeep(*input.Deep))
	}
	if input.Arrays != nil {
		opts = append(opts, casefy.WithArrays(*input.Arrays))
	}
	if len(input.FieldMappings) > 0 {
		opts = append(opts, casefy.WithFieldMappings(input.FieldMappings))
	}
	if len(input.ExcludeFields) > 0 {
		opts = append(opts, casefy.WithExcludeFields(input.ExcludeFields...))
	}
	if input.IncludeFields != nil {
		opts = append(opts, casefy.WithIncludeFields(input.IncludeFields...))
	}
	return opts
}
