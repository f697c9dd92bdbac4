package i

// Logger is the logging surface services write to.
type Logger interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}
