package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPathsAt(t *testing.T) {
	paths := PathsAt("/home/u/.config/slippi-launcher")

	if paths.DolphinDir != "/home/u/.config/slippi-launcher/dolphin" {
		t.Errorf("DolphinDir = %q", paths.DolphinDir)
	}
	if paths.DolphinConfigDir != filepath.Join(paths.DolphinDir, "User", "Config") {
		t.Errorf("DolphinConfigDir = %q", paths.DolphinConfigDir)
	}
	if paths.GameSettingsDir != filepath.Join(paths.DolphinDir, "User", "GameSettings") {
		t.Errorf("GameSettingsDir = %q", paths.GameSettingsDir)
	}
	if paths.ConfigFile != filepath.Join(paths.ConfigDir, ConfigFileName) {
		t.Errorf("ConfigFile = %q", paths.ConfigFile)
	}
	if paths.SocketPath != filepath.Join(paths.ConfigDir, "launcher.sock") {
		t.Errorf("SocketPath = %q", paths.SocketPath)
	}
}

func TestLoadMissingFileIsEmptyConfig(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "launcher.toml"))
	if err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}
	if cfg.ISOPath != "" || cfg.LaunchArgs != "" {
		t.Errorf("missing file should give empty config, got %+v", cfg)
	}
	if cfg.ResolvedDownloadURL() != DefaultDownloadURL {
		t.Errorf("ResolvedDownloadURL = %q, want default", cfg.ResolvedDownloadURL())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launcher.toml")
	cfg := &Config{
		ISOPath:    "/games/melee.iso",
		LaunchArgs: "--batch --cout",
	}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.ISOPath != cfg.ISOPath {
		t.Errorf("ISOPath = %q, want %q", loaded.ISOPath, cfg.ISOPath)
	}
	if loaded.LaunchArgs != cfg.LaunchArgs {
		t.Errorf("LaunchArgs = %q, want %q", loaded.LaunchArgs, cfg.LaunchArgs)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty is valid", Config{}, false},
		{"absolute iso path", Config{ISOPath: "/games/melee.iso"}, false},
		{"relative iso path", Config{ISOPath: "melee.iso"}, true},
		{"https download url", Config{DownloadURL: "https://example.com/releases"}, false},
		{"http download url", Config{DownloadURL: "http://example.com/releases"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadInvalidToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launcher.toml")
	if err := os.WriteFile(path, []byte("iso_path = [broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load on malformed TOML should fail")
	}
}
