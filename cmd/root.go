package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/RucksP/slippi-launcher/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
	homeDir    string
)

var rootCmd = &cobra.Command{
	Use:   "slippi-launcher",
	Short: "Slippi launcher for Melee netplay",
	Long: `slippi-launcher manages a Slippi Dolphin setup from the command line.

It downloads and installs the emulator build, edits Dolphin's ini settings
files, toggles per-game gecko codes, manages the Slippi user credentials,
and launches the game.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonOutput, os.Stderr)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().StringVar(&homeDir, "home", "", "Override the launcher config directory")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
	logError   = logging.UserError
)
