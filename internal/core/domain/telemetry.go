package domain

// BuildStatus represents the lifecycle state of a single package build.
type BuildStatus string

const (
	// BuildStatusPending indicates the package is waiting for its turn.
	BuildStatusPending BuildStatus = "pending"
	// BuildStatusRunning indicates the package is currently building.
	BuildStatusRunning BuildStatus = "running"
	// BuildStatusCompleted indicates the package built successfully.
	BuildStatusCompleted BuildStatus = "completed"
	// BuildStatusFailed indicates the build command failed.
	BuildStatusFailed BuildStatus = "failed"
)

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}
