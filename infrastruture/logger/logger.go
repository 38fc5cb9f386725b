// Package logger builds the component loggers used across the application on top of zap.
package logger

import (
	"errors"
	"io"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger writes console lines tagged with a colored component name.
type Logger struct {
	s *zap.SugaredLogger
}

// New creates a Logger for the named component writing to out.
// Debug messages are emitted only when debug is true.
func New(name, color string, out io.Writer, debug bool) (*Logger, error) {
	if out == nil {
		return nil, errors.New("logger: nil writer")
	}

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderCfg.EncodeName = func(n string, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(color + "[" + n + "]" + config.ColorReset)
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(out), level)
	return &Logger{s: zap.New(core).Named(name).Sugar()}, nil
}

// NewNop returns a Logger that discards everything.
func NewNop() *Logger {
	return &Logger{s: zap.NewNop().Sugar()}
}

// Named returns a child logger for a sub-component.
func (l *Logger) Named(name string) i.Logger {
	return &Logger{s: l.s.Named(name)}
}

func (l *Logger) Debug(msg string, keysAndValues ...any) { l.s.Debugw(msg, keysAndValues...) }
func (l *Logger) Info(msg string, keysAndValues ...any)  { l.s.Infow(msg, keysAndValues...) }
func (l *Logger) Warn(msg string, keysAndValues ...any)  { l.s.Warnw(msg, keysAndValues...) }
func (l *Logger) Error(msg string, keysAndValues ...any) { l.s.Errorw(msg, keysAndValues...) }

// Sync flushes buffered log entries.
func (l *Logger) Sync() error {
	return l.s.Sync()
}
