package generator

import (
	"context"
	"log/slog"
)

// Diagnostics receives informational and error messages
// emitted during generation. Implementations must not
// block and never influence the generated text.
type Diagnostics interface {
	Info(msg string)
	Error(msg string)
}

// LogDiagnostics forwards diagnostics to a structured
// logger.
type LogDiagnostics struct {
	logger *slog.Logger
	attrs  []any
}

// NewLogDiagnostics returns a sink writing to logger. A
// nil logger uses slog.Default. Extra attrs are attached
// to every record.
func NewLogDiagnostics(
	logger *slog.Logger,
	attrs ...any,
) *LogDiagnostics {
	if logger == nil {
		logger = slog.Default()
	}

	return &LogDiagnostics{logger: logger, attrs: attrs}
}

// Info logs msg at info level.
func (ld *LogDiagnostics) Info(msg string) {
	ld.logger.Log(context.Background(), slog.LevelInfo, msg, ld.attrs...)
}

// Error logs msg at error level.
func (ld *LogDiagnostics) Error(msg string) {
	ld.logger.Log(context.Background(), slog.LevelError, msg, ld.attrs...)
}

type discardDiagnostics struct{}

func (discardDiagnostics) Info(string)  {}
func (discardDiagnostics) Error(string) {}
