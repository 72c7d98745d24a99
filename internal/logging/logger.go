// Package logging provides the structured JSON-lines logger used by the
// strongof command.
package logging

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Logger writes one JSON object per entry.
type Logger struct {
	mu       *sync.Mutex
	output   io.Writer
	service  string
	minLevel Level
	fields   map[string]any
	now      func() time.Time
}

// New creates a logger writing to output. A nil output means os.Stderr.
func New(service string, minLevel Level, output io.Writer) *Logger {
	if output == nil {
		output = os.Stderr
	}
	return &Logger{
		mu:       &sync.Mutex{},
		output:   output,
		service:  service,
		minLevel: minLevel,
		fields:   map[string]any{},
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return New("nop", LevelError+1, io.Discard)
}

// Debug logs at debug level.
func (l *Logger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.log(ctx, LevelDebug, msg, fields...)
}

// Info logs at info level.
func (l *Logger) Info(ctx context.Context, msg string, fields ...Field) {
	l.log(ctx, LevelInfo, msg, fields...)
}

// Warn logs at warn level.
func (l *Logger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.log(ctx, LevelWarn, msg, fields...)
}

// Error logs at error level.
func (l *Logger) Error(ctx context.Context, msg string, fields ...Field) {
	l.log(ctx, LevelError, msg, fields...)
}

// With returns a logger with additional fields.
func (l *Logger) With(fields ...Field) *Logger {
	newFields := make(map[string]any, len(l.fields)+len(fields))
	for k, v := range l.fields {
		newFields[k] = v
	}
	for _, f := range fields {
		newFields[f.Key] = f.Value
	}
	clone := *l
	clone.fields = newFields
	return &clone
}

func (l *Logger) log(ctx context.Context, level Level, msg string, fields ...Field) {
	if level < l.minLevel {
		return
	}

	allFields := make(map[string]any, len(l.fields)+len(fields))
	for k, v := range l.fields {
		allFields[k] = v
	}
	for _, f := range fields {
		allFields[f.Key] = f.Value
	}

	output := map[string]any{
		"timestamp": l.now().Format(time.RFC3339Nano),
		"level":     level.String(),
		"message":   msg,
		"service":   l.service,
	}
	if id := CorrelationIDFromContext(ctx); id != "" {
		output["correlation_id"] = id
	}
	if redacted := redactFields(allFields); len(redacted) > 0 {
		output["fields"] = redacted
	}

	data, err := json.Marshal(output)
	if err != nil {
		data = []byte(fmt.Sprintf(`{"level":"ERROR","message":"log entry not encodable: %s"}`, err))
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.output, string(data))
}

type correlationKey struct{}

// WithCorrelationID returns a context carrying id.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey{}, id)
}

// CorrelationIDFromContext returns the correlation ID in ctx, if any.
func CorrelationIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(correlationKey{}).(string)
	return id
}
