package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// User-facing CLI output, separate from the structured debug logging.
// Human mode prints emoji-prefixed lines; when Setup enabled JSON output
// the messages are routed through the structured logger instead.

// UserInfo prints an informational message to stdout.
func UserInfo(format string, args ...any) {
	userPrint(os.Stdout, "ℹ", slog.LevelInfo, format, args...)
}

// UserSuccess prints a success message to stdout.
func UserSuccess(format string, args ...any) {
	userPrint(os.Stdout, "✓", slog.LevelInfo, format, args...)
}

// UserWarning prints a warning to stderr.
func UserWarning(format string, args ...any) {
	userPrint(os.Stderr, "⚠", slog.LevelWarn, format, args...)
}

// UserError prints an error to stderr.
func UserError(format string, args ...any) {
	userPrint(os.Stderr, "✗", slog.LevelError, format, args...)
}

func userPrint(w io.Writer, prefix string, level slog.Level, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if jsonMode {
		Logger.Log(context.Background(), level, msg)
		return
	}
	fmt.Fprintf(w, "%s %s\n", prefix, msg)
}
