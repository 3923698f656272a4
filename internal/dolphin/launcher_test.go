package dolphin

import (
	"errors"
	"reflect"
	"testing"

	"github.com/RucksP/slippi-launcher/internal/system"
)

func TestLaunchBuildsArgs(t *testing.T) {
	exec := system.NewMockExecutor()
	l := NewLauncherWith("/install", exec)

	pid, err := l.Launch(LaunchOptions{
		ISOPath:   "/games/melee.iso",
		ExtraArgs: `--batch --user "/path with spaces"`,
	})
	if err != nil {
		t.Fatalf("Launch: %v", err)
	}
	if pid == 0 {
		t.Error("pid = 0")
	}

	call, err := exec.LastCall()
	if err != nil {
		t.Fatalf("LastCall: %v", err)
	}
	if call.Name != l.BinaryPath() {
		t.Errorf("binary = %q, want %q", call.Name, l.BinaryPath())
	}
	want := []string{"-e", "/games/melee.iso", "--batch", "--user", "/path with spaces"}
	if !reflect.DeepEqual(call.Args, want) {
		t.Errorf("args = %v, want %v", call.Args, want)
	}
}

func TestLaunchNoISO(t *testing.T) {
	exec := system.NewMockExecutor()
	l := NewLauncherWith("/install", exec)

	if _, err := l.Launch(LaunchOptions{}); err != nil {
		t.Fatalf("Launch: %v", err)
	}

	call, _ := exec.LastCall()
	if len(call.Args) != 0 {
		t.Errorf("args = %v, want none", call.Args)
	}
}

func TestLaunchMalformedExtraArgs(t *testing.T) {
	exec := system.NewMockExecutor()
	l := NewLauncherWith("/install", exec)

	_, err := l.Launch(LaunchOptions{ExtraArgs: `--flag "unterminated`})
	if err == nil {
		t.Error("Launch should reject unbalanced quoting")
	}
	if len(exec.Calls) != 0 {
		t.Error("nothing should be executed on arg parse failure")
	}
}

func TestLaunchMissingBinary(t *testing.T) {
	exec := system.NewMockExecutor()
	exec.LookPathErr = errors.New("no such file")
	l := NewLauncherWith("/install", exec)

	// The binary is resolved before anything is started.
	if _, err := l.Launch(LaunchOptions{ISOPath: "/games/melee.iso"}); err == nil {
		t.Error("Launch should fail when the binary cannot be resolved")
	}
	if len(exec.Calls) != 0 {
		t.Error("nothing should be started when the binary is missing")
	}
}

func TestLaunchStartFailure(t *testing.T) {
	exec := system.NewMockExecutor()
	exec.StartErr = errors.New("no such file")
	l := NewLauncherWith("/install", exec)

	if _, err := l.Launch(LaunchOptions{}); err == nil {
		t.Error("Launch should surface executor failure")
	}
}
