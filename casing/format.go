package casing

import (
	"fmt"

	"github.com/viant/tagly/format/text"
)

type caseFormat struct {
	style
	format text.CaseFormat
}

// FromCaseFormat creates a transformer backed by tagly case format, i.e. text.CaseFormatUpperUnderscore
func FromCaseFormat(name, description string, format text.CaseFormat) (Transformer, error) {
	if name == "" {
		return nil, fmt.Errorf("case format style name was empty")
	}
	if !format.IsDefined() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedStyle, format)
	}
	return &caseFormat{style: style{name: name, description: description}, format: format}, nil
}

func (c *caseFormat) Transform(input string) string {
	if input == "" {
		return input
	}
	src := text.DetectCaseFormat(input)
	if !src.IsDefined() {
		src = text.CaseFormatLowerCamel
	}
	if src == c.format {
		return input
	}
	return src.Format(input, c.format)
}

func (c *caseFormat) Detect(input string) bool {
	if input == "" {
		return false
	}
	return text.DetectCaseFormat(input) == c.format
}
