package casing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/tagly/format/text"
)

func TestFromCaseFormat(t *testing.T) {
	transformer, err := FromCaseFormat("SCREAMING_SNAKE_CASE", "upper underscore", text.CaseFormatUpperUnderscore)
	require.NoError(t, err)
	assert.Equal(t, "SCREAMING_SNAKE_CASE", transformer.Style())
	assert.Equal(t, "USER_NAME", transformer.Transform("userName"))
	assert.Equal(t, "USER_NAME", transformer.Transform("USER_NAME"))
	assert.Equal(t, "", transformer.Transform(""))
	assert.True(t, transformer.Detect("USER_NAME"))
	assert.False(t, transformer.Detect("userName"))
	assert.False(t, transformer.Detect(""))

	_, err = FromCaseFormat("", "", text.CaseFormatUpperUnderscore)
	assert.Error(t, err)
	_, err = FromCaseFormat("bogus", "", text.CaseFormat("bogus"))
	assert.ErrorIs(t, err, ErrUnsupportedStyle)

	registry := NewRegistry()
	require.NoError(t, registry.Register(transformer))
	assert.True(t, registry.IsSupported("SCREAMING_SNAKE_CASE"))
}
