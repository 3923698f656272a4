package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/RucksP/slippi-launcher/internal/audit"
	"github.com/RucksP/slippi-launcher/internal/dolphin"
	"github.com/RucksP/slippi-launcher/internal/errors"
)

var (
	installVersion string
	installURL     string
	installForce   bool
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Download and install a Dolphin build",
	Args:  cobra.NoArgs,
	RunE:  runInstall,
}

func init() {
	installCmd.Flags().StringVar(&installVersion, "version", "", "Release version to install (e.g. v3.4.0)")
	installCmd.Flags().StringVar(&installURL, "url", "", "Archive URL (derived from the release feed when omitted)")
	installCmd.Flags().BoolVar(&installForce, "force", false, "Reinstall even when this version is already installed")
	installCmd.MarkFlagRequired("version")
	rootCmd.AddCommand(installCmd)
}

// archiveName is the per-platform release asset name.
func archiveName() string {
	switch runtime.GOOS {
	case "windows":
		return "FM-Slippi-win.zip"
	case "darwin":
		return "FM-Slippi-mac.zip"
	default:
		return "FM-Slippi-linux.zip"
	}
}

func runInstall(cmd *cobra.Command, args []string) error {
	p, err := paths()
	if err != nil {
		return err
	}
	cfg, err := loadConfig(p)
	if err != nil {
		return err
	}

	installer := dolphin.NewInstaller(p.DolphinDir)
	if installed := installer.InstalledVersion(); installed != "" && !installForce {
		if !dolphin.IsOutdated(installed, installVersion) {
			logInfo("Dolphin %s is already installed", installed)
			return nil
		}
	}

	url := installURL
	if url == "" {
		url = fmt.Sprintf("%s/download/%s/%s", cfg.ResolvedDownloadURL(), installVersion, archiveName())
	}

	logInfo("Downloading Dolphin %s...", installVersion)
	if err := installer.Install(cmd.Context(), url, installVersion); err != nil {
		return errors.InstallError("install failed", err)
	}

	_ = auditLogger(p).LogEvent(audit.EventInstall, audit.ScopeLauncher, installVersion)

	logSuccess("Dolphin %s installed", installVersion)
	return nil
}
