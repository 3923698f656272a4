package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/RucksP/slippi-launcher/internal/broker"
	"github.com/RucksP/slippi-launcher/internal/credentials"
	"github.com/RucksP/slippi-launcher/internal/dolphin"
	"github.com/RucksP/slippi-launcher/internal/errors"
	"github.com/RucksP/slippi-launcher/internal/logging"
	"github.com/RucksP/slippi-launcher/internal/settings"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the broker so a frontend can drive the launcher",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	p, err := paths()
	if err != nil {
		return err
	}
	cfg, err := loadConfig(p)
	if err != nil {
		return err
	}

	srv := broker.NewServer(
		settingsService(p),
		credentials.NewStore(p.CredentialsFile),
		dolphin.NewLauncher(p.DolphinDir),
		dolphin.NewInstaller(p.DolphinDir),
		cfg,
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Surface hand-edited settings files in the broker log while serving.
	if watcher := watchSettings(p.DolphinConfigDir, p.GameSettingsDir); watcher != nil {
		defer watcher.Close()
		go func() {
			for path := range watcher.Changes() {
				logging.Info("settings file changed on disk", "path", path)
			}
		}()
	}

	logInfo("Broker listening on %s", p.SocketPath)
	if err := srv.ListenAndServe(ctx, p.SocketPath); err != nil {
		return errors.BrokerError("broker stopped", err)
	}
	return nil
}

// watchSettings starts an ini watcher over the directories that exist.
// Watching is best effort; the broker runs fine without it.
func watchSettings(dirs ...string) *settings.Watcher {
	var present []string
	for _, dir := range dirs {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			present = append(present, dir)
		}
	}
	if len(present) == 0 {
		return nil
	}
	watcher, err := settings.NewWatcher(present...)
	if err != nil {
		logging.Warn("settings watcher unavailable", "error", err)
		return nil
	}
	return watcher
}
