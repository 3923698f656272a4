// Package config provides configuration types and loading for
// slippi-launcher.
//
// # Configuration Files
//
// The package handles two concerns:
//
//   - Config: launcher settings loaded from {configDir}/launcher.toml
//   - Paths: the directory layout everything else builds on
//
// # Launcher Configuration
//
// Config holds the user's launcher settings:
//
//	iso_path = "/games/melee.iso"
//	launch_args = "--batch --cout"
//	download_url = "https://github.com/project-slippi/Ishiiruka/releases"
//
// # Paths
//
// Paths resolves the per-user layout under the OS config directory:
//
//	~/.config/slippi-launcher/launcher.toml   launcher config
//	~/.config/slippi-launcher/dolphin/        installed emulator build
//	~/.config/slippi-launcher/dolphin/User/Config/   Dolphin ini files
//	~/.config/slippi-launcher/user.json       Slippi credentials
//	~/.config/slippi-launcher/launcher.sock   broker socket
//
// # Validation
//
// Config implements Validate(); loading validates after decoding.
package config
