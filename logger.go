package casefy

import "log/slog"

// Logger receives renamed keys as Debug records with alternating key-value attributes:
// style, from, to, path, depth and arrayItem.
type Logger interface {
	Debug(msg string, attrs ...any)
}

// NopLogger discards records, it is the default logger
type NopLogger struct{}

// Debug implements Logger
func (NopLogger) Debug(_ string, _ ...any) {}

// SlogAdapter sends rename records to a *slog.Logger
type SlogAdapter struct {
	logger *slog.Logger
}

// Debug implements Logger
func (s *SlogAdapter) Debug(msg string, attrs ...any) {
	s.logger.Debug(msg, attrs...)
}

// With returns adapter adding attrs to every record
func (s *SlogAdapter) With(attrs ...any) *SlogAdapter {
	return &SlogAdapter{logger: s.logger.With(attrs...)}
}

// NewSlogAdapter creates an adapter, nil logger falls back to slog.Default()
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}
