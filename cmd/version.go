package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RucksP/slippi-launcher/internal/dolphin"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the installed Dolphin build version",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) error {
	p, err := paths()
	if err != nil {
		return err
	}
	installer := dolphin.NewInstaller(p.DolphinDir)
	version := installer.InstalledVersion()
	if version == "" {
		logWarning("No Dolphin build installed. Run 'slippi-launcher install' first.")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), version)
	return nil
}
