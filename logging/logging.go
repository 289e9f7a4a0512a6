// Package logging provides the structured, leveled logger used throughout
// press: callers log with a message plus alternating key/value pairs, e.g.
// logger.Debug("stage skipped", "stage", "grain").
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level is a small int8 log-level scale.
type Level int8

const (
	Debug Level = iota
	Info
	Warning
	Error
	Fatal
)

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case Debug:
		return zapcore.DebugLevel
	case Info:
		return zapcore.InfoLevel
	case Warning:
		return zapcore.WarnLevel
	case Error:
		return zapcore.ErrorLevel
	case Fatal:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// Logger is the interface every press package depends on, never the
// concrete zap types directly, so a Host can supply its own implementation.
type Logger interface {
	Debug(msg string, kv ...interface{})
	Info(msg string, kv ...interface{})
	Warning(msg string, kv ...interface{})
	Error(msg string, kv ...interface{})
	Log(level Level, msg string, kv ...interface{})
	SetLevel(level Level)
}

// zapLogger backs Logger with a zap.SugaredLogger writing to w.
type zapLogger struct {
	sugar *zap.SugaredLogger
	atom  zap.AtomicLevel
	sup   bool
}

// New builds a Logger writing structured lines to w at the given starting
// level. When suppress is true, only Error and Fatal lines are ever
// emitted regardless of level (used so test runs can stay quiet).
func New(level Level, w io.Writer, suppress bool) Logger {
	atom := zap.NewAtomicLevelAt(level.zapLevel())
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(w), atom)
	l := zap.New(core)
	return &zapLogger{sugar: l.Sugar(), atom: atom, sup: suppress}
}

func (z *zapLogger) Debug(msg string, kv ...interface{})   { z.Log(Debug, msg, kv...) }
func (z *zapLogger) Info(msg string, kv ...interface{})    { z.Log(Info, msg, kv...) }
func (z *zapLogger) Warning(msg string, kv ...interface{}) { z.Log(Warning, msg, kv...) }
func (z *zapLogger) Error(msg string, kv ...interface{})   { z.Log(Error, msg, kv...) }

func (z *zapLogger) Log(level Level, msg string, kv ...interface{}) {
	if z.sup && level < Error {
		return
	}
	switch level {
	case Debug:
		z.sugar.Debugw(msg, kv...)
	case Info:
		z.sugar.Infow(msg, kv...)
	case Warning:
		z.sugar.Warnw(msg, kv...)
	case Error:
		z.sugar.Errorw(msg, kv...)
	case Fatal:
		z.sugar.Fatalw(msg, kv...)
	default:
		z.sugar.Infow(msg, kv...)
	}
}

func (z *zapLogger) SetLevel(level Level) {
	z.atom.SetLevel(level.zapLevel())
}

// Nop is a Logger that discards everything, useful for tests and as a
// safe zero value when a Host forgets to set one.
type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{})         {}
func (nopLogger) Info(string, ...interface{})          {}
func (nopLogger) Warning(string, ...interface{})       {}
func (nopLogger) Error(string, ...interface{})         {}
func (nopLogger) Log(Level, string, ...interface{})    {}
func (nopLogger) SetLevel(Level)                       {}

// Nop returns a Logger that discards all output.
func Nop() Logger { return nopLogger{} }
