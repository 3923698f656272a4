package settings

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/RucksP/slippi-launcher/internal/system"
)

const (
	testConfigDir = "/dolphin/User/Config"
	testGameDir   = "/dolphin/User/GameSettings"
)

func newTestService() (*Service, *system.MockFS) {
	fs := system.NewMockFS()
	return NewServiceWith(testConfigDir, testGameDir, fs), fs
}

func addIni(fs *system.MockFS, path string, lines ...string) {
	fs.AddFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644)
}

func TestGetSetKey(t *testing.T) {
	s, fs := newTestService()
	addIni(fs, filepath.Join(testConfigDir, "Dolphin.ini"),
		"[Core]",
		"CPUThread = True",
	)

	got, err := s.GetKey("Dolphin.ini", "Core", "CPUThread", "")
	if err != nil {
		t.Fatalf("GetKey: %v", err)
	}
	if got != "True" {
		t.Errorf("GetKey = %q, want %q", got, "True")
	}

	if err := s.SetKey("Dolphin.ini", "Core", "SlippiReplayDir", "/replays"); err != nil {
		t.Fatalf("SetKey: %v", err)
	}

	// The cycle is load → mutate → save: the earlier key survives.
	got, err = s.GetKey("Dolphin.ini", "Core", "CPUThread", "")
	if err != nil {
		t.Fatalf("GetKey after SetKey: %v", err)
	}
	if got != "True" {
		t.Errorf("CPUThread after unrelated SetKey = %q, want %q", got, "True")
	}
	got, _ = s.GetKey("Dolphin.ini", "Core", "SlippiReplayDir", "")
	if got != "/replays" {
		t.Errorf("SlippiReplayDir = %q, want %q", got, "/replays")
	}
}

func TestGetKeyDefaults(t *testing.T) {
	s, _ := newTestService()

	// Missing file reads as empty document.
	got, err := s.GetKey("Dolphin.ini", "Core", "CPUThread", "False")
	if err != nil {
		t.Fatalf("GetKey: %v", err)
	}
	if got != "False" {
		t.Errorf("GetKey on missing file = %q, want default", got)
	}
}

func TestSetKeyCreatesFile(t *testing.T) {
	s, fs := newTestService()

	if err := s.SetKey("GFX.ini", "Settings", "EFBScale", "2"); err != nil {
		t.Fatalf("SetKey: %v", err)
	}

	data, err := fs.ReadFile(filepath.Join(testConfigDir, "GFX.ini"))
	if err != nil {
		t.Fatalf("file not created: %v", err)
	}
	if want := "[Settings]\nEFBScale=2\n\n"; string(data) != want {
		t.Errorf("file content = %q, want %q", data, want)
	}
}

func TestDeleteKey(t *testing.T) {
	s, fs := newTestService()
	addIni(fs, filepath.Join(testConfigDir, "Dolphin.ini"),
		"[Core]",
		"CPUThread = True",
	)

	removed, err := s.DeleteKey("Dolphin.ini", "Core", "CPUThread")
	if err != nil {
		t.Fatalf("DeleteKey: %v", err)
	}
	if !removed {
		t.Error("DeleteKey = false, want true")
	}

	removed, err = s.DeleteKey("Dolphin.ini", "Core", "CPUThread")
	if err != nil {
		t.Fatalf("DeleteKey second: %v", err)
	}
	if removed {
		t.Error("DeleteKey on absent key = true, want false")
	}
}

func TestSetGetLines(t *testing.T) {
	s, _ := newTestService()

	lines := []string{"$SomeCode", "*A note"}
	if err := s.SetLines("GALE01-overrides.ini", "Gecko", lines); err != nil {
		t.Fatalf("SetLines: %v", err)
	}

	got, err := s.GetLines("GALE01-overrides.ini", "Gecko", false)
	if err != nil {
		t.Fatalf("GetLines: %v", err)
	}
	if !reflect.DeepEqual(got, lines) {
		t.Errorf("GetLines = %v, want %v", got, lines)
	}
}

func TestResolveFileRejectsEscapes(t *testing.T) {
	s, fs := newTestService()
	fs.AddFile("/etc/passwd", []byte("root:x"), 0o644)

	// securejoin pins traversal inside the config root, so the read resolves
	// under /dolphin/User/Config and finds nothing.
	got, err := s.GetKey("../../../etc/passwd", "Core", "k", "safe")
	if err != nil {
		t.Fatalf("GetKey: %v", err)
	}
	if got != "safe" {
		t.Errorf("traversal read = %q, want default", got)
	}

	if _, err := s.GetKey("", "Core", "k", ""); err == nil {
		t.Error("empty file name should error")
	}
}

func TestListFiles(t *testing.T) {
	s, fs := newTestService()
	addIni(fs, filepath.Join(testConfigDir, "Dolphin.ini"), "[Core]")
	addIni(fs, filepath.Join(testConfigDir, "GFX.ini"), "[Settings]")
	fs.AddFile(filepath.Join(testConfigDir, "notes.txt"), nil, 0o644)

	files, err := s.ListFiles()
	if err != nil {
		t.Fatalf("ListFiles: %v", err)
	}
	want := []string{"Dolphin.ini", "GFX.ini"}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("ListFiles = %v, want %v", files, want)
	}
}

func TestListFilesMissingDir(t *testing.T) {
	s, _ := newTestService()
	files, err := s.ListFiles()
	if err != nil {
		t.Fatalf("ListFiles: %v", err)
	}
	if files != nil {
		t.Errorf("ListFiles = %v, want nil", files)
	}
}

func TestDeleteSection(t *testing.T) {
	s, fs := newTestService()
	addIni(fs, filepath.Join(testConfigDir, "Dolphin.ini"),
		"[Core]",
		"CPUThread = True",
		"[Display]",
		"Fullscreen = False",
	)

	removed, err := s.DeleteSection("Dolphin.ini", "Display")
	if err != nil {
		t.Fatalf("DeleteSection: %v", err)
	}
	if !removed {
		t.Error("DeleteSection = false, want true")
	}

	keys, _ := s.GetKeys("Dolphin.ini", "Display")
	if len(keys) != 0 {
		t.Errorf("Display keys after delete = %v", keys)
	}
	keys, _ = s.GetKeys("Dolphin.ini", "Core")
	if !reflect.DeepEqual(keys, []string{"CPUThread"}) {
		t.Errorf("Core keys = %v", keys)
	}
}
