// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors and context
// helpers used across the POS client.
//
// The Logger type embeds zerolog.Logger so every zerolog method is available
// on *Logger. The TUI owns the terminal, so the client logs to a file;
// components get a child logger tagged with their name via ForComponent.
package logger

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogFileName is the name of the client log file.
const LogFileName = "logs"

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger builds a JSON logger writing to w, tagged with role. Every
// entry carries a timestamp and the caller's function name in "func".
func NewLogger(role string, w io.Writer) *Logger {
	configureGlobals()
	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewClientLogger opens (or creates) the log file inside dir and returns a
// logger writing to it. An empty dir means the executable's directory.
// When the file cannot be opened the logger falls back to stderr, and the
// returned closer is a no-op.
func NewClientLogger(role, dir string) (*Logger, io.Closer) {
	if dir == "" {
		execPath, _ := os.Executable()
		dir = filepath.Dir(execPath)
	}

	logFile, err := os.OpenFile(filepath.Join(dir, LogFileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return NewLogger(role, os.Stderr), io.NopCloser(nil)
	}

	return NewLogger(role, logFile), logFile
}

func configureGlobals() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"
}

// Nop returns a *Logger that discards all output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a logger inheriting every field of l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// ForComponent returns a child logger with a "component" field, e.g. the
// entity name of a synchronizer.
func (l *Logger) ForComponent(component string) *Logger {
	return &Logger{l.With().Str("component", component).Logger()}
}

// WithContext attaches l to ctx so FromContext can retrieve it.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext returns the logger attached to ctx, or zerolog's disabled
// default logger when there is none. It never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
