// Package logging provides logging utilities for slippi-launcher.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("loading settings file", "file", name, "path", path)
//	logging.Warn("download stalled", "url", url, "received", n)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Downloading Dolphin %s...", version)
//	logging.UserSuccess("Dolphin %s installed", version)
//	logging.UserWarning("Replay directory %s does not exist", dir)
//	logging.UserError("Failed to launch Dolphin: %v", err)
//
// Output destinations:
//   - UserInfo, UserSuccess: stdout
//   - UserWarning, UserError: stderr
//
// When Setup enables JSON output the user functions are redirected through
// the structured logger so automation reads a single stream.
//
// # Status Indicators
//
// User functions prepend status indicators:
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
//   - ✗ (error)
package logging
