package output

// LoggerPort is the structured application logger. Variadic args are
// alternating key/value pairs.
type LoggerPort interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	WithField(key string, value any) LoggerPort
	With(args ...any) LoggerPort

	Close() error
}
