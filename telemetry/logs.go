package telemetry

// Logger receives the resolver's diagnostic messages. Fields are passed as
// alternating key/value pairs.
type Logger interface {
	Info(msg string, kv ...any)
	Debug(msg string, kv ...any)
	Error(msg string, err error, kv ...any)
}

type NOPLogger struct {
}

func (n NOPLogger) Info(msg string, kv ...any) {
}
func (n NOPLogger) Debug(msg string, kv ...any) {
}
func (n NOPLogger) Error(msg string, err error, kv ...any) {
}
