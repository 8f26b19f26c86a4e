// File: internal/services/summary/types.go
package summary

// Logger defines the logging interface used by the summary engine.
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// State is the engine lifecycle position. Transitions are Idle ->
// Debouncing -> Generating -> Idle; a failed generation still lands on Idle,
// no error state is retained between runs.
type State int

const (
	StateIdle State = iota
	StateDebouncing
	StateGenerating
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDebouncing:
		return "debouncing"
	case StateGenerating:
		return "generating"
	default:
		return "unknown"
	}
}
