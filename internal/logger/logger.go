// SPDX-License-Identifier: GPL-3.0-or-later

// Package logger renders the supervisor's stderr log line protocol:
// "<program> <LEVEL>:  <tokens joined by single spaces>\n", levels DEBUG,
// INFO, ERROR, FATAL. DEBUG lines are suppressed unless debug mode is on.
package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

var program = "pythond"

// SetProgram sets the log-line prefix used by every Logger created
// afterwards. Call it once during startup, before the first job runs.
func SetProgram(name string) {
	program = name
}

// Logger is a thin wrapper around slog.Logger that always writes through
// the line protocol handler and never exits the process itself.
type Logger struct {
	*slog.Logger
}

// New returns a Logger that writes to stderr using the current program name.
func New() *Logger {
	return &Logger{slog.New(newLineHandler(os.Stderr, program))}
}

// With returns a Logger carrying additional structured attributes; they are
// rendered as bare values appended to the message, matching the plain
// token-joined wire format.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{l.Logger.With(args...)}
}

func (l *Logger) Debug(msg string) { l.log(slog.LevelDebug, msg) }
func (l *Logger) Info(msg string)  { l.log(slog.LevelInfo, msg) }
func (l *Logger) Error(msg string) { l.log(slog.LevelError, msg) }
func (l *Logger) Fatal(msg string) { l.log(levelFatal, msg) }

func (l *Logger) Debugf(format string, args ...any) { l.logf(slog.LevelDebug, format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.logf(slog.LevelInfo, format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.logf(slog.LevelError, format, args...) }
func (l *Logger) Fatalf(format string, args ...any) { l.logf(levelFatal, format, args...) }

func (l *Logger) log(lvl slog.Level, msg string) {
	l.Logger.Log(context.Background(), lvl, msg)
}

func (l *Logger) logf(lvl slog.Level, format string, args ...any) {
	l.Logger.Log(context.Background(), lvl, fmt.Sprintf(format, args...))
}
