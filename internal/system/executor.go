package system

import (
	"os/exec"
)

// osExecutor implements CommandExecutor using real OS operations.
type osExecutor struct{}

func (e *osExecutor) Start(name string, args ...string) (int, error) {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return 0, err
	}
	pid := cmd.Process.Pid
	// Reap the child in the background so it doesn't linger as a zombie if
	// the launcher outlives it.
	go func() { _ = cmd.Wait() }()
	return pid, nil
}

func (e *osExecutor) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
