package contextkeys

import "context"

// traceIDKeyType - приватный тип ключа для идентификатора трассировки.
type traceIDKeyType struct{}

var traceIDKey = traceIDKeyType{}

// WithTraceID кладет trace_id в контекст запроса.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

// TraceIDFromContext извлекает trace_id из контекста или возвращает пустую строку.
func TraceIDFromContext(ctx context.Context) string {
	if traceID, ok := ctx.Value(traceIDKey).(string); ok {
		return traceID
	}
	return ""
}
