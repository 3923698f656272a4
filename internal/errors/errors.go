package errors

import (
	"errors"
	"fmt"
)

// Exit codes for slippi-launcher
const (
	ExitSuccess          = 0
	ExitGeneralError     = 1
	ExitConfigError      = 2
	ExitSettingsError    = 3
	ExitInstallError     = 4
	ExitLaunchError      = 5
	ExitCredentialsError = 6
	ExitBrokerError      = 7
)

// LauncherError is the base error type for slippi-launcher
type LauncherError struct {
	Code    int
	Message string
	Cause   error
}

func (e *LauncherError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *LauncherError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *LauncherError) ExitCode() int {
	return e.Code
}

// New creates a new LauncherError
func New(code int, message string) *LauncherError {
	return &LauncherError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a LauncherError
func Wrap(code int, message string, cause error) *LauncherError {
	return &LauncherError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// ConfigError returns an error for launcher configuration issues
func ConfigError(message string, cause error) *LauncherError {
	return Wrap(ExitConfigError, message, cause)
}

// SettingsError returns an error for Dolphin settings file operations
func SettingsError(op string, cause error) *LauncherError {
	return Wrap(ExitSettingsError, fmt.Sprintf("settings %s failed", op), cause)
}

// SettingsFileNotFound returns an error for a missing settings file
func SettingsFileNotFound(name string) *LauncherError {
	return New(ExitSettingsError, fmt.Sprintf("settings file not found: %s", name))
}

// InstallError returns an error for Dolphin download/install operations
func InstallError(message string, cause error) *LauncherError {
	return Wrap(ExitInstallError, message, cause)
}

// DolphinNotInstalled returns an error when no Dolphin build is installed
func DolphinNotInstalled() *LauncherError {
	return New(ExitInstallError, "dolphin is not installed; run 'slippi-launcher install' first")
}

// LaunchError returns an error for emulator launch failures
func LaunchError(cause error) *LauncherError {
	return Wrap(ExitLaunchError, "failed to launch dolphin", cause)
}

// CredentialsError returns an error for credential file operations
func CredentialsError(message string, cause error) *LauncherError {
	return Wrap(ExitCredentialsError, message, cause)
}

// NotLoggedIn returns an error when no credential file is present
func NotLoggedIn() *LauncherError {
	return New(ExitCredentialsError, "no user credentials found")
}

// BrokerError returns an error for broker server failures
func BrokerError(message string, cause error) *LauncherError {
	return Wrap(ExitBrokerError, message, cause)
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *LauncherError {
	return New(ExitGeneralError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var launcherErr *LauncherError
	if errors.As(err, &launcherErr) {
		return launcherErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
