// Package logging wraps logrus the way the teacher's internal/logging
// package wraps it: a small Level type and a Logger interface so the
// rest of the module depends on an interface, not on logrus directly.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Level mirrors the teacher's logging.Level: a small enum rather than
// logrus's own, so callers never import logrus to pick a level.
type Level int

const (
	Error Level = iota
	Warn
	Info
	Debug
)

func (l Level) logrusLevel() logrus.Level {
	switch l {
	case Error:
		return logrus.ErrorLevel
	case Warn:
		return logrus.WarnLevel
	case Debug:
		return logrus.DebugLevel
	default:
		return logrus.InfoLevel
	}
}

// Logger is the surface the rest of the module depends on. StandardLogger
// wraps logrus; NoOpLogger (NewNoOp) discards everything.
type Logger interface {
	Debug(fmt string, a ...interface{})
	Info(fmt string, a ...interface{})
	Warn(fmt string, a ...interface{})
	Error(fmt string, a ...interface{})
	SetLevel(Level)
	SetOutput(io.Writer)
}

// StandardLogger is a thin logrus.Logger wrapper.
type StandardLogger struct {
	entry *logrus.Logger
}

// New returns a StandardLogger at Info level, formatted the way the
// REPL's --debug flag expects: plain text, no timestamp noise, so
// trace output reads naturally alongside the REPL's own prompts.
func New() *StandardLogger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	l.SetLevel(logrus.InfoLevel)
	return &StandardLogger{entry: l}
}

func (s *StandardLogger) Debug(f string, a ...interface{}) { s.entry.Debugf(f, a...) }
func (s *StandardLogger) Info(f string, a ...interface{})  { s.entry.Infof(f, a...) }
func (s *StandardLogger) Warn(f string, a ...interface{})  { s.entry.Warnf(f, a...) }
func (s *StandardLogger) Error(f string, a ...interface{}) { s.entry.Errorf(f, a...) }
func (s *StandardLogger) SetLevel(lv Level)                { s.entry.SetLevel(lv.logrusLevel()) }
func (s *StandardLogger) SetOutput(w io.Writer)             { s.entry.SetOutput(w) }

// NoOpLogger discards everything; used by tests and by any caller that
// doesn't want eval tracing.
type NoOpLogger struct{}

func NewNoOp() *NoOpLogger { return &NoOpLogger{} }

func (NoOpLogger) Debug(string, ...interface{}) {}
func (NoOpLogger) Info(string, ...interface{})  {}
func (NoOpLogger) Warn(string, ...interface{})  {}
func (NoOpLogger) Error(string, ...interface{}) {}
func (NoOpLogger) SetLevel(Level)               {}
func (NoOpLogger) SetOutput(io.Writer)          {}
