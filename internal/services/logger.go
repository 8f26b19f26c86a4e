package services

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger defines the common logging interface for all services.
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// ZerologLogger adapts a zerolog.Logger to the service Logger interface.
type ZerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger creates a production-ready structured logger tagged with
// the owning service name.
func NewZerologLogger(service string) *ZerologLogger {
	zl := zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", service).
		Logger()
	return &ZerologLogger{logger: zl}
}

func (z *ZerologLogger) Info(msg string, keysAndValues ...interface{}) {
	z.emit(z.logger.Info(), msg, keysAndValues)
}

func (z *ZerologLogger) Error(msg string, keysAndValues ...interface{}) {
	z.emit(z.logger.Error(), msg, keysAndValues)
}

func (z *ZerologLogger) Debug(msg string, keysAndValues ...interface{}) {
	z.emit(z.logger.Debug(), msg, keysAndValues)
}

func (z *ZerologLogger) Warn(msg string, keysAndValues ...interface{}) {
	z.emit(z.logger.Warn(), msg, keysAndValues)
}

func (z *ZerologLogger) emit(ev *zerolog.Event, msg string, keysAndValues []interface{}) {
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		ev = ev.Interface(key, keysAndValues[i+1])
	}
	ev.Msg(msg)
}

// NoOpLogger is a logger that does nothing (for testing).
type NoOpLogger struct{}

func (n *NoOpLogger) Info(msg string, keysAndValues ...interface{})  {}
func (n *NoOpLogger) Error(msg string, keysAndValues ...interface{}) {}
func (n *NoOpLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (n *NoOpLogger) Warn(msg string, keysAndValues ...interface{})  {}

// NewLogger builds a logger from the environment: silent under tests,
// level-filtered elsewhere via LOG_LEVEL.
func NewLogger(service string) Logger {
	if os.Getenv("GO_ENV") == "test" {
		return &NoOpLogger{}
	}

	switch strings.ToUpper(os.Getenv("LOG_LEVEL")) {
	case "DEBUG":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "WARN":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "ERROR":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	return NewZerologLogger(service)
}
