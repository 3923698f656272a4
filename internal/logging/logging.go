package logging

import (
	"io"
	"log/slog"
	"os"
)

// Logger is the process-wide structured logger configured by Setup.
var Logger *slog.Logger = slog.Default()

// Verbose reports whether debug-level logging is enabled.
var Verbose bool

// jsonMode is set by Setup; user-facing output switches to the structured
// logger so scripted callers get a single machine-readable stream.
var jsonMode bool

// Setup configures the structured logger. With verbose=true debug records
// are emitted; with jsonOutput=true records are JSON instead of text. A nil
// writer falls back to stderr.
func Setup(verbose, jsonOutput bool, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}

	Verbose = verbose
	jsonMode = jsonOutput
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if jsonOutput {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	Logger = slog.New(handler)
	slog.SetDefault(Logger)
}

// Debug logs at debug level. Visible only in verbose mode.
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Info logs at info level.
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Warn logs at warn level.
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

// Error logs at error level.
func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}

// With returns a logger carrying the given attributes.
func With(args ...any) *slog.Logger {
	return Logger.With(args...)
}
