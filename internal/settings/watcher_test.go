package settings

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsIniChanges(t *testing.T) {
	dir := t.TempDir()

	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	path := filepath.Join(dir, "Dolphin.ini")
	if err := os.WriteFile(path, []byte("[Core]\nCPUThread=True\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Changes():
		if got != path {
			t.Errorf("change = %q, want %q", got, path)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no change reported for ini write")
	}
}

func TestWatcherIgnoresNonIniFiles(t *testing.T) {
	dir := t.TempDir()

	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Changes():
		t.Errorf("unexpected change for non-ini file: %q", got)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherClose(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestWatcherMissingDir(t *testing.T) {
	if _, err := NewWatcher("/does/not/exist"); err == nil {
		t.Error("NewWatcher on missing dir should error")
	}
}
