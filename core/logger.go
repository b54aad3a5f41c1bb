package core

// Logger is the application-wide logging contract.
// Args may include a user profile; implementations that report upstream
// (rollbar) attach it to the report as the affected person.
type Logger interface {
	Enable(enabled bool)
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}
