package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/viant/casefy/casing"
)

type listStylesInput struct{}

type styleInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type listStylesOutput struct {
	Styles []styleInfo `json:"styles"`
}

func handleListStyles(_ context.Context, _ *mcp.CallToolRequest, _ listStylesInput) (*mcp.CallToolResult, listStylesOutput, error) {
	names := casing.Styles()
	output := listStylesOutput{Styles: makeSlice[styleInfo](len(names))}
	for _, name := range names {
		info, ok := casing.Default.Info(name)
		if !ok {
			continue
		}
		output.Styles = append(output.Styles, styleInfo{Name: info.Name, Description: info.Description})
	}
	return nil, output, nil
}

type detectStyleInput struct {
	Keys []string `json:"keys" jsonschema:"Keys to classify"`
}

type keyStyle struct {
	Key   string `json:"key"`
	Style string `json:"style,omitempty"`
}

type detectStyleOutput struct {
	Keys []keyStyle `json:"keys,omitempty"`
}

func handleDetectStyle(_ context.Context, _ *mcp.CallToolRequest, input detectStyleInput) (*mcp.CallToolResult, detectStyleOutput, error) {
	if len(input.Keys) == 0 {
		return errResult(fmt.Errorf("at least one key is required")), detectStyleOutput{}, nil
	}
	output := detectStyleOutput{Keys: makeSlice[keyStyle](len(input.Keys))}
	for _, key := range input.Keys {
		style, _ := casing.Detect(key)
		output.Keys = append(output.Keys, keyStyle{Key: key, Style: style})
	}
	return nil, output, nil
}
