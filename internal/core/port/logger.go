package port

// Fields определяет тип для структурированных полей лога.
type Fields map[string]interface{}

// LoggerPort определяет интерфейс логгера, не зависящий от конкретной реализации.
// Адаптеры (stdout, fluent) реализуют его в internal/adapters/logger.
type LoggerPort interface {
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	Error(msg string, err error, fields Fields)
	Debug(msg string, fields Fields)

	// WithFields возвращает новый логгер с добавленным контекстом.
	WithFields(fields Fields) LoggerPort
}
