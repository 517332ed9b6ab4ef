package mcpserver

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/viant/casefy"
	"github.com/viant/casefy/casing"
)

// serverConfig holds tool defaults read from CASEFY_* variables.
type serverConfig struct {
	DefaultFrom   string
	DefaultTo     string
	PreserveTypes bool
	MaxDepth      int
	MaxInlineSize int
	Indent        string
}

var cfg = loadConfig()

func loadConfig() *serverConfig {
	return &serverConfig{
		DefaultFrom:   env("CASEFY_DEFAULT_FROM", casing.StyleSnake, parseStyle),
		DefaultTo:     env("CASEFY_DEFAULT_TO", casing.StyleCamel, parseStyle),
		PreserveTypes: env("CASEFY_PRESERVE_TYPES", true, strconv.ParseBool),
		MaxDepth:      env("CASEFY_MAX_DEPTH", casefy.DefaultMaxDepth, parsePositive),
		MaxInlineSize: env("CASEFY_MAX_INLINE_SIZE", 10*1024*1024, parsePositive),
		Indent:        os.Getenv("CASEFY_INDENT"),
	}
}

// env returns parsed variable value, unset or unparsable variables yield fallback
func env[T any](key string, fallback T, parse func(string) (T, error)) T {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	value, err := parse(raw)
	if err != nil {
		slog.Warn("ignoring "+key, "value", raw, "default", fallback, "error", err)
		return fallback
	}
	return value
}

func parsePositive(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("expected positive number, got %v", n)
	}
	return n, nil
}

func parseStyle(raw string) (string, error) {
	if !casing.IsSupported(raw) {
		return "", fmt.Errorf("%w: %v", casing.ErrUnsupportedStyle, raw)
	}
	return raw, nil
}
