package circulation

// Logger interface for operational logging of circulation activity, warnings, and error reporting.
//
// The interface is deliberately dependency-free; *slog.Logger satisfies it
// directly, and any structured logger can be bridged with a thin adapter.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}
