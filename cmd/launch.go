package cmd

import (
	"github.com/spf13/cobra"

	"github.com/RucksP/slippi-launcher/internal/audit"
	"github.com/RucksP/slippi-launcher/internal/dolphin"
	"github.com/RucksP/slippi-launcher/internal/errors"
)

var launchISO string

var launchCmd = &cobra.Command{
	Use:   "launch",
	Short: "Launch Dolphin",
	Args:  cobra.NoArgs,
	RunE:  runLaunch,
}

func init() {
	launchCmd.Flags().StringVar(&launchISO, "iso", "", "Game ISO to boot (defaults to iso_path from config)")
	rootCmd.AddCommand(launchCmd)
}

func runLaunch(cmd *cobra.Command, args []string) error {
	p, err := paths()
	if err != nil {
		return err
	}
	cfg, err := loadConfig(p)
	if err != nil {
		return err
	}
	if _, err := requireInstalled(p); err != nil {
		return err
	}

	iso := launchISO
	if iso == "" {
		iso = cfg.ISOPath
	}
	if iso == "" {
		logWarning("No ISO configured; Dolphin will open to the menu")
	}

	launcher := dolphin.NewLauncher(p.DolphinDir)
	pid, err := launcher.Launch(dolphin.LaunchOptions{
		ISOPath:   iso,
		ExtraArgs: cfg.LaunchArgs,
	})
	if err != nil {
		return errors.LaunchError(err)
	}

	_ = auditLogger(p).LogEvent(audit.EventLaunch, audit.ScopeLauncher, iso)

	logSuccess("Dolphin started (pid %d)", pid)
	return nil
}
