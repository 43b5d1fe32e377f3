package port

// Fields - структурированные данные для записи в лог.
type Fields map[string]interface{}

// LoggerPort отделяет ядро от конкретной реализации логгера.
type LoggerPort interface {
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	// Error записывает ошибку вместе с объектом error.
	Error(msg string, err error, fields Fields)
	Debug(msg string, fields Fields)

	// WithFields создает новый логгер с добавленным контекстом (trace_id, component...).
	WithFields(fields Fields) LoggerPort
}
