package domain

// LogLevel is the severity attached to a message recorded on a package vertex.
type LogLevel int

const (
	// LogLevelInfo marks progress messages.
	LogLevelInfo LogLevel = iota
	// LogLevelWarn marks degraded but non-fatal processing.
	LogLevelWarn
	// LogLevelError marks the failure that aborted a package.
	LogLevelError
)

// String returns the label printed in front of a vertex log line.
func (l LogLevel) String() string {
	switch l {
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}
