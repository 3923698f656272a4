package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// AppDirName is the per-user directory under the OS config dir.
	AppDirName = "slippi-launcher"

	// ConfigFileName is the launcher's own config file.
	ConfigFileName = "launcher.toml"

	// DefaultDownloadURL is the release feed queried by the installer.
	DefaultDownloadURL = "https://github.com/project-slippi/Ishiiruka/releases"
)

// Paths is the directory layout the launcher operates on.
type Paths struct {
	ConfigDir        string // root of all launcher state
	DolphinDir       string // installed emulator build
	DolphinConfigDir string // Dolphin's User/Config ini directory
	GameSettingsDir  string // per-game ini overrides
	ConfigFile       string // launcher.toml
	CredentialsFile  string // user.json
	SocketPath       string // broker unix socket
	EventsDir        string // audit logs
}

// DefaultPaths resolves the layout under the OS user config directory.
func DefaultPaths() (*Paths, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("cannot resolve user config dir: %w", err)
	}
	return PathsAt(filepath.Join(base, AppDirName)), nil
}

// PathsAt builds the layout rooted at an explicit directory. Tests and the
// --home flag use this to avoid touching the real user config dir.
func PathsAt(root string) *Paths {
	dolphin := filepath.Join(root, "dolphin")
	return &Paths{
		ConfigDir:        root,
		DolphinDir:       dolphin,
		DolphinConfigDir: filepath.Join(dolphin, "User", "Config"),
		GameSettingsDir:  filepath.Join(dolphin, "User", "GameSettings"),
		ConfigFile:       filepath.Join(root, ConfigFileName),
		CredentialsFile:  filepath.Join(root, "user.json"),
		SocketPath:       filepath.Join(root, "launcher.sock"),
		EventsDir:        filepath.Join(root, "events"),
	}
}

// Config is the launcher's own configuration, stored as TOML.
type Config struct {
	ISOPath     string `toml:"iso_path"`
	LaunchArgs  string `toml:"launch_args,omitempty"`
	DownloadURL string `toml:"download_url,omitempty"`
}

// Validate checks that the Config is usable.
func (c *Config) Validate() error {
	if c.ISOPath != "" && !filepath.IsAbs(c.ISOPath) {
		return fmt.Errorf("iso_path must be absolute (got %q)", c.ISOPath)
	}
	if c.DownloadURL != "" && !strings.HasPrefix(c.DownloadURL, "https://") {
		return fmt.Errorf("download_url must be https (got %q)", c.DownloadURL)
	}
	return nil
}

// ResolvedDownloadURL returns the configured release feed or the default.
func (c *Config) ResolvedDownloadURL() string {
	if c.DownloadURL != "" {
		return c.DownloadURL
	}
	return DefaultDownloadURL
}

// Load reads and validates the launcher config. A missing file yields an
// empty config rather than an error, so first runs work without setup.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes the launcher config, creating its directory if needed.
func Save(path string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}
