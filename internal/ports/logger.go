package ports

// Logger is the structured logger used across adapters.
// Key/value pairs follow the message, as in Logger.Info("msg", "key", v).
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}
