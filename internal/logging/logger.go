package logging

import (
	"context"
	"log"
)

type requestIDKey struct{}

// WithRequestID stores the request id on ctx for later log lines.
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, rid)
}

// RequestID returns the request id stored on ctx, or "".
func RequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok {
		return rid
	}
	return ""
}

// Logger writes request-scoped key=value log lines.
type Logger struct {
	requestID string
}

// FromContext creates a logger bound to the request id on ctx.
func FromContext(ctx context.Context) *Logger {
	rid := RequestID(ctx)
	if rid == "" {
		rid = "unknown"
	}
	return &Logger{requestID: rid}
}

func (l *Logger) Error(operation string, err error) {
	log.Printf("[error] request_id=%s operation=%s error=%v", l.requestID, operation, err)
}

func (l *Logger) Infof(operation string, format string, args ...interface{}) {
	log.Printf("[info] request_id=%s operation=%s "+format, append([]interface{}{l.requestID, operation}, args...)...)
}

func (l *Logger) Warnf(operation string, format string, args ...interface{}) {
	log.Printf("[warn] request_id=%s operation=%s "+format, append([]interface{}{l.requestID, operation}, args...)...)
}
