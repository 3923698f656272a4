package cmd

import (
	"github.com/RucksP/slippi-launcher/internal/audit"
	"github.com/RucksP/slippi-launcher/internal/config"
	"github.com/RucksP/slippi-launcher/internal/dolphin"
	"github.com/RucksP/slippi-launcher/internal/errors"
	"github.com/RucksP/slippi-launcher/internal/settings"
)

// paths resolves the launcher directory layout, honoring --home.
func paths() (*config.Paths, error) {
	if homeDir != "" {
		return config.PathsAt(homeDir), nil
	}
	p, err := config.DefaultPaths()
	if err != nil {
		return nil, errors.ConfigError("cannot resolve launcher paths", err)
	}
	return p, nil
}

// loadConfig loads the launcher config for the resolved paths.
func loadConfig(p *config.Paths) (*config.Config, error) {
	cfg, err := config.Load(p.ConfigFile)
	if err != nil {
		return nil, errors.ConfigError("cannot load launcher config", err)
	}
	return cfg, nil
}

// settingsService builds the settings service over the Dolphin config dirs.
func settingsService(p *config.Paths) *settings.Service {
	return settings.NewService(p)
}

// requireInstalled returns an installer after verifying a build is present.
func requireInstalled(p *config.Paths) (*dolphin.Installer, error) {
	installer := dolphin.NewInstaller(p.DolphinDir)
	if !installer.IsInstalled() {
		return nil, errors.DolphinNotInstalled()
	}
	return installer, nil
}

// auditLogger builds the lifecycle event logger.
func auditLogger(p *config.Paths) *audit.Logger {
	return audit.NewLogger(p.EventsDir)
}
