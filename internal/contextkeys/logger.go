package contextkeys

import (
	"context"

	"mobile-api-service/internal/core/port"
)

// loggerKeyType - приватный тип ключа, чтобы исключить коллизии в контексте.
type loggerKeyType struct{}

var loggerKey = loggerKeyType{}

// WithLogger кладет логгер в контекст запроса.
func WithLogger(ctx context.Context, logger port.LoggerPort) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext извлекает логгер из контекста.
// Если логгера в контексте нет, возвращает no-op заглушку, чтобы не паниковать.
func LoggerFromContext(ctx context.Context) port.LoggerPort {
	if logger, ok := ctx.Value(loggerKey).(port.LoggerPort); ok {
		return logger
	}
	return &noopLogger{}
}

// noopLogger молча проглатывает все сообщения.
type noopLogger struct{}

func (n *noopLogger) Info(msg string, fields port.Fields)             {}
func (n *noopLogger) Warn(msg string, fields port.Fields)             {}
func (n *noopLogger) Error(msg string, err error, fields port.Fields) {}
func (n *noopLogger) Debug(msg string, fields port.Fields)            {}
func (n *noopLogger) WithFields(fields port.Fields) port.LoggerPort   { return n }
