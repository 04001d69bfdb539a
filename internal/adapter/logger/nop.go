package logger

type nopLogger struct{}

// Nop returns a logger that discards everything. Used in tests.
func Nop() Logger { return nopLogger{} }

func (nopLogger) Info(action, message, requestID string, details map[string]any)             {}
func (nopLogger) Debug(action, message, requestID string, details map[string]any)            {}
func (nopLogger) Error(action, message, requestID string, details map[string]any, err error) {}
