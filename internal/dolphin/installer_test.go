package dolphin

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

// buildZip assembles an in-memory archive from name → content pairs.
func buildZip(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("zip create %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("zip write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	return buf.Bytes()
}

func serveZip(t *testing.T, data []byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(data)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestInstall(t *testing.T) {
	archive := buildZip(t, map[string]string{
		"dolphin-emu":              "binary bytes",
		"Sys/GameSettings/GALE01.ini": "[Gecko]\n$Code\n",
	})
	srv := serveZip(t, archive)

	dir := t.TempDir()
	inst := NewInstaller(dir)

	if inst.IsInstalled() {
		t.Error("IsInstalled = true before install")
	}

	if err := inst.Install(context.Background(), srv.URL, "v3.4.0"); err != nil {
		t.Fatalf("Install: %v", err)
	}

	if got := inst.InstalledVersion(); got != "v3.4.0" {
		t.Errorf("InstalledVersion = %q, want %q", got, "v3.4.0")
	}

	data, err := os.ReadFile(filepath.Join(dir, "dolphin-emu"))
	if err != nil {
		t.Fatalf("extracted binary missing: %v", err)
	}
	if string(data) != "binary bytes" {
		t.Errorf("binary content = %q", data)
	}

	if _, err := os.Stat(filepath.Join(dir, "Sys", "GameSettings", "GALE01.ini")); err != nil {
		t.Errorf("nested entry not extracted: %v", err)
	}
}

func TestInstallZipSlipStaysInside(t *testing.T) {
	archive := buildZip(t, map[string]string{
		"../../escape.txt": "gotcha",
	})
	srv := serveZip(t, archive)

	root := t.TempDir()
	dir := filepath.Join(root, "install")
	inst := NewInstaller(dir)

	if err := inst.Install(context.Background(), srv.URL, "v1"); err != nil {
		t.Fatalf("Install: %v", err)
	}

	if _, err := os.Stat(filepath.Join(root, "escape.txt")); err == nil {
		t.Error("archive entry escaped the install directory")
	}
	// The entry lands inside the install dir instead.
	if _, err := os.Stat(filepath.Join(dir, "escape.txt")); err != nil {
		t.Errorf("entry not pinned inside install dir: %v", err)
	}
}

func TestInstallBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)

	inst := NewInstaller(t.TempDir())
	if err := inst.Install(context.Background(), srv.URL, "v1"); err == nil {
		t.Error("Install should fail on 404")
	}
}

func TestInstallCancelled(t *testing.T) {
	srv := serveZip(t, buildZip(t, map[string]string{"f": "x"}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inst := NewInstaller(t.TempDir())
	if err := inst.Install(ctx, srv.URL, "v1"); err == nil {
		t.Error("Install should fail when context is cancelled")
	}
}

func TestInstalledVersionMissing(t *testing.T) {
	inst := NewInstaller(t.TempDir())
	if got := inst.InstalledVersion(); got != "" {
		t.Errorf("InstalledVersion = %q, want empty", got)
	}
}
