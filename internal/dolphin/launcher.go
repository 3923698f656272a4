package dolphin

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/RucksP/slippi-launcher/internal/logging"
	"github.com/RucksP/slippi-launcher/internal/system"
)

// LaunchOptions describes one emulator invocation.
type LaunchOptions struct {
	// ISOPath is the game image to boot. Empty launches to the menu.
	ISOPath string

	// ExtraArgs is a shell-quoted string of additional flags from the
	// launcher config, e.g. `--batch --cout`.
	ExtraArgs string
}

// Launcher starts the installed emulator build.
type Launcher struct {
	installDir string
	exec       system.CommandExecutor
	log        *slog.Logger
}

// NewLauncher creates a launcher over the build in installDir.
func NewLauncher(installDir string) *Launcher {
	return NewLauncherWith(installDir, system.DefaultExecutor())
}

// NewLauncherWith creates a launcher with an explicit executor.
func NewLauncherWith(installDir string, exec system.CommandExecutor) *Launcher {
	return &Launcher{
		installDir: installDir,
		exec:       exec,
		log:        logging.With("component", "launcher"),
	}
}

// BinaryPath returns the emulator binary inside the install directory for
// the current platform.
func (l *Launcher) BinaryPath() string {
	return filepath.Join(l.installDir, binaryName())
}

func binaryName() string {
	switch runtime.GOOS {
	case "windows":
		return "Slippi Dolphin.exe"
	case "darwin":
		return filepath.Join("Slippi Dolphin.app", "Contents", "MacOS", "Slippi Dolphin")
	default:
		return "dolphin-emu"
	}
}

// Launch starts the emulator without waiting for it and returns its PID.
func (l *Launcher) Launch(opts LaunchOptions) (int, error) {
	args, err := buildArgs(opts)
	if err != nil {
		return 0, err
	}

	binary, err := l.exec.LookPath(l.BinaryPath())
	if err != nil {
		return 0, fmt.Errorf("emulator binary not runnable: %w", err)
	}
	l.log.Info("launching dolphin", "binary", binary, "args", args)

	pid, err := l.exec.Start(binary, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to start %s: %w", binary, err)
	}
	return pid, nil
}

// buildArgs assembles the emulator argv from the options.
func buildArgs(opts LaunchOptions) ([]string, error) {
	var args []string
	if opts.ISOPath != "" {
		args = append(args, "-e", opts.ISOPath)
	}

	if opts.ExtraArgs != "" {
		extra, err := shellquote.Split(opts.ExtraArgs)
		if err != nil {
			return nil, fmt.Errorf("malformed launch_args %q: %w", opts.ExtraArgs, err)
		}
		args = append(args, extra...)
	}
	return args, nil
}
