package casefy

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/casefy/casing"
	"github.com/viant/casefy/data"
)

type panicTransformer struct{}

func (panicTransformer) Style() string              { return "panic_case" }
func (panicTransformer) Description() string        { return "always panics" }
func (panicTransformer) Transform(in string) string { panic("boom") }
func (panicTransformer) Detect(in string) bool      { return true }

type logEntry struct {
	msg   string
	attrs map[string]interface{}
}

type recordingLogger struct {
	mux     sync.Mutex
	entries []logEntry
}

func (r *recordingLogger) Debug(msg string, attrs ...any) {
	entry := logEntry{msg: msg, attrs: map[string]interface{}{}}
	for i := 0; i+1 < len(attrs); i += 2 {
		entry.attrs[attrs[i].(string)] = attrs[i+1]
	}
	r.mux.Lock()
	r.entries = append(r.entries, entry)
	r.mux.Unlock()
}

func TestNew(t *testing.T) {
	service, err := New(casing.StyleSnake, casing.StyleCamel, WithExcludeFields("id"), WithDeep(false))
	require.NoError(t, err)
	assert.Equal(t, casing.StyleSnake, service.From().Style())
	assert.Equal(t, casing.StyleCamel, service.To().Style())

	stats := service.Stats()
	assert.Equal(t, casing.StyleSnake, stats.FromCase)
	assert.Equal(t, casing.StyleCamel, stats.ToCase)
	assert.Equal(t, []string{casing.StyleCamel, casing.StyleSnake, casing.StylePascal, casing.StyleKebab}, stats.Styles)
	assert.False(t, stats.Options.Deep)
	assert.True(t, stats.Options.Arrays)
	assert.True(t, stats.Options.PreserveTypes)
	assert.Equal(t, DefaultMaxDepth, stats.Options.MaxDepth)
	assert.Equal(t, map[string]bool{"id": true}, stats.Options.ExcludeFields)
	assert.Nil(t, stats.Options.IncludeFields)

	stats.Options.ExcludeFields["user_name"] = true
	outcome := service.Transform(map[string]interface{}{"user_name": 1})
	assert.Equal(t, map[string]interface{}{"userName": 1}, outcome.Data, "stats options are a copy")

	_, err = New("bogus_style", casing.StyleCamel)
	require.Error(t, err)
	assert.Equal(t, "configuration error: unsupported source case style: bogus_style", err.Error())

	_, err = New("", "")
	assert.True(t, errors.Is(err, ErrConfig))
}

func TestService_Transform(t *testing.T) {
	service, err := New(casing.StyleCamel, casing.StyleSnake)
	require.NoError(t, err)

	outcome := service.Transform(map[string]interface{}{"firstName": "a", "lastName": "b"})
	assert.Equal(t, &Outcome{
		Data:            map[string]interface{}{"first_name": "a", "last_name": "b"},
		TransformedKeys: 2,
		FromCase:        casing.StyleCamel,
		ToCase:          casing.StyleSnake,
		Success:         true,
	}, outcome)

	input := make([]interface{}, 1)
	input[0] = input
	outcome = service.Transform(input)
	assert.False(t, outcome.Success)
	assert.Equal(t, 0, outcome.TransformedKeys)
	assert.Equal(t, "data error at [0]: cyclic value", outcome.Error)
	assert.True(t, errors.Is(outcome.Err, ErrData))
	assert.True(t, errors.Is(outcome.Err, ErrCycle))
}

func TestService_Transform_SharedReference(t *testing.T) {
	shared := map[string]interface{}{"zip_code": 1}
	items := []interface{}{shared, shared}
	input := map[string]interface{}{"home_address": shared, "work_address": shared, "all_items": items}
	actual, err := TransformKeys(input, casing.StyleSnake, casing.StyleCamel)
	require.NoError(t, err)
	assert.Empty(t, actual.Error)
	assert.Equal(t, map[string]interface{}{
		"homeAddress": map[string]interface{}{"zipCode": 1},
		"workAddress": map[string]interface{}{"zipCode": 1},
		"allItems":    []interface{}{map[string]interface{}{"zipCode": 1}, map[string]interface{}{"zipCode": 1}},
	}, actual.Data)
	assert.Equal(t, 7, actual.TransformedKeys)
}

func TestService_Transform_ObjectCycle(t *testing.T) {
	object := data.New(data.Field{Key: "user_name", Value: "a"})
	object.Set("parent_node", object)
	actual, err := TransformKeys(object, casing.StyleSnake, casing.StyleCamel)
	require.NoError(t, err)
	assert.Equal(t, "data error at parent_node: cyclic value", actual.Error)
	assert.Same(t, object, actual.Data)
}

func TestService_Transform_MaxDepth(t *testing.T) {
	input := map[string]interface{}{
		"level_one": map[string]interface{}{
			"level_two": map[string]interface{}{"level_three": 1},
		},
	}
	var useCases = []struct {
		description string
		maxDepth    int
		expectError string
		expectCount int
	}{
		{description: "exceeded", maxDepth: 2, expectError: "data error at level_one.level_two.level_three: max depth exceeded"},
		{description: "within ceiling", maxDepth: 3, expectCount: 3},
		{description: "unlimited", maxDepth: 0, expectCount: 3},
	}
	for _, useCase := range useCases {
		actual, err := TransformKeys(input, casing.StyleSnake, casing.StyleCamel, WithMaxDepth(useCase.maxDepth))
		require.NoError(t, err, useCase.description)
		assert.EqualValues(t, useCase.expectError, actual.Error, useCase.description)
		assert.EqualValues(t, useCase.expectCount, actual.TransformedKeys, useCase.description)
		if useCase.expectError != "" {
			assert.True(t, errors.Is(actual.Err, ErrMaxDepth), useCase.description)
			assert.Equal(t, input, actual.Data, useCase.description)
		}
	}
}

func TestService_Transform_Panic(t *testing.T) {
	registry := casing.NewRegistry()
	require.NoError(t, registry.Register(panicTransformer{}))
	service, err := New(casing.StyleSnake, "panic_case", WithRegistry(registry))
	require.NoError(t, err)

	input := map[string]interface{}{"user_name": 1}
	outcome := service.Transform(input)
	assert.False(t, outcome.Success)
	assert.Equal(t, "data error: panic: boom", outcome.Error)
	assert.Equal(t, input, outcome.Data)

	_, err = New(casing.StyleSnake, "panic_case")
	assert.Error(t, err, "default registry is not affected")
}

func TestService_TransformContext(t *testing.T) {
	service, err := New(casing.StyleSnake, casing.StyleCamel)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	input := map[string]interface{}{"user_name": 1}
	outcome := service.TransformContext(ctx, input)
	assert.False(t, outcome.Success)
	assert.True(t, errors.Is(outcome.Err, context.Canceled))
	assert.Equal(t, "data error: traversal canceled: context canceled", outcome.Error)
	assert.Equal(t, input, outcome.Data)

	outcome = service.TransformContext(context.Background(), input)
	assert.True(t, outcome.Success)
	assert.Equal(t, 1, outcome.TransformedKeys)
}

func TestService_Logger(t *testing.T) {
	logger := &recordingLogger{}
	input := map[string]interface{}{
		"user_name": "a",
		"plain":     1,
		"items":     []interface{}{map[string]interface{}{"item_id": 1}},
	}
	actual, err := TransformKeys(input, casing.StyleSnake, casing.StyleCamel, WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, 2, actual.TransformedKeys)
	require.Len(t, logger.entries, 2)

	assert.Equal(t, logEntry{msg: "renamed key", attrs: map[string]interface{}{
		"style": casing.StyleCamel, "from": "item_id", "to": "itemId",
		"path": "items[0].item_id", "depth": 2, "arrayItem": true,
	}}, logger.entries[0])
	assert.Equal(t, logEntry{msg: "renamed key", attrs: map[string]interface{}{
		"style": casing.StyleCamel, "from": "user_name", "to": "userName",
		"path": "user_name", "depth": 0, "arrayItem": false,
	}}, logger.entries[1])
}

func TestService_SlogAdapter(t *testing.T) {
	buffer := &bytes.Buffer{}
	handler := slog.NewTextHandler(buffer, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := NewSlogAdapter(slog.New(handler)).With("component", "test")
	_, err := TransformKeys(map[string]interface{}{"user_name": "a", "id": 1}, casing.StyleSnake, casing.StyleCamel, WithLogger(logger))
	require.NoError(t, err)
	output := buffer.String()
	assert.Contains(t, output, `msg="renamed key"`)
	assert.Contains(t, output, "component=test")
	assert.Contains(t, output, "from=user_name to=userName")
	assert.NotContains(t, output, "from=id")
}

func TestService_Concurrent(t *testing.T) {
	service, err := New(casing.StyleSnake, casing.StyleKebab)
	require.NoError(t, err)
	wg := sync.WaitGroup{}
	results := make([]*Outcome, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = service.Transform(map[string]interface{}{"user_name": i})
		}(i)
	}
	wg.Wait()
	for i, outcome := range results {
		assert.Equal(t, map[string]interface{}{"user-name": i}, outcome.Data)
	}
}
