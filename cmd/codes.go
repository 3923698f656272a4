package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RucksP/slippi-launcher/internal/audit"
	"github.com/RucksP/slippi-launcher/internal/errors"
	"github.com/RucksP/slippi-launcher/internal/tui"
)

var codesCmd = &cobra.Command{
	Use:   "codes",
	Short: "Manage per-game gecko codes",
}

var codesListCmd = &cobra.Command{
	Use:   "list <game-id>",
	Short: "List a game's gecko codes and their state",
	Args:  cobra.ExactArgs(1),
	RunE:  runCodesList,
}

var codesEnableCmd = &cobra.Command{
	Use:   "enable <game-id> <code-name>",
	Short: "Enable one gecko code",
	Args:  cobra.ExactArgs(2),
	RunE:  runCodesToggle(true),
}

var codesDisableCmd = &cobra.Command{
	Use:   "disable <game-id> <code-name>",
	Short: "Disable one gecko code",
	Args:  cobra.ExactArgs(2),
	RunE:  runCodesToggle(false),
}

var codesPickCmd = &cobra.Command{
	Use:   "pick <game-id>",
	Short: "Toggle gecko codes interactively",
	Args:  cobra.ExactArgs(1),
	RunE:  runCodesPick,
}

func init() {
	codesCmd.AddCommand(codesListCmd, codesEnableCmd, codesDisableCmd, codesPickCmd)
	rootCmd.AddCommand(codesCmd)
}

func runCodesList(cmd *cobra.Command, args []string) error {
	p, err := paths()
	if err != nil {
		return err
	}

	codes, err := settingsService(p).ListCodes(args[0])
	if err != nil {
		return errors.SettingsError("read", err)
	}
	fmt.Print(tui.SummarizeCodes(args[0], codes))
	return nil
}

func runCodesToggle(enable bool) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		p, err := paths()
		if err != nil {
			return err
		}
		gameID, name := args[0], args[1]

		if err := settingsService(p).SetCodeEnabled(gameID, name, enable); err != nil {
			return errors.SettingsError("toggle", err)
		}

		verb := "Disabled"
		if enable {
			verb = "Enabled"
		}
		_ = auditLogger(p).LogEvent(audit.EventCodes, gameID, fmt.Sprintf("%s %s", verb, name))
		logSuccess("%s %q for %s", verb, name, gameID)
		return nil
	}
}

func runCodesPick(cmd *cobra.Command, args []string) error {
	p, err := paths()
	if err != nil {
		return err
	}
	gameID := args[0]
	svc := settingsService(p)

	codes, err := svc.ListCodes(gameID)
	if err != nil {
		return errors.SettingsError("read", err)
	}

	result, err := tui.RunCodePicker(gameID, codes)
	if err != nil {
		return errors.SettingsError("pick", err)
	}
	if !result.Committed {
		logInfo("No changes saved")
		return nil
	}

	changed := 0
	for i, code := range result.Codes {
		if code.Enabled == codes[i].Enabled {
			continue
		}
		if err := svc.SetCodeEnabled(gameID, code.Name, code.Enabled); err != nil {
			return errors.SettingsError("toggle", err)
		}
		changed++
	}

	if changed > 0 {
		_ = auditLogger(p).LogEvent(audit.EventCodes, gameID, fmt.Sprintf("%d codes toggled", changed))
	}
	logSuccess("Updated %d code(s) for %s", changed, gameID)
	return nil
}
