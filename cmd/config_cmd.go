package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RucksP/slippi-launcher/internal/audit"
	"github.com/RucksP/slippi-launcher/internal/errors"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read and edit Dolphin settings files",
}

var configGetCmd = &cobra.Command{
	Use:   "get <file> <section> <key>",
	Short: "Print one settings value",
	Args:  cobra.ExactArgs(3),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <file> <section> <key> <value>",
	Short: "Set one settings value",
	Args:  cobra.ExactArgs(4),
	RunE:  runConfigSet,
}

var configDeleteCmd = &cobra.Command{
	Use:   "delete <file> <section> <key>",
	Short: "Delete one settings key",
	Args:  cobra.ExactArgs(3),
	RunE:  runConfigDelete,
}

var configKeysCmd = &cobra.Command{
	Use:   "keys <file> <section>",
	Short: "List a section's keys in file order",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigKeys,
}

var configLinesCmd = &cobra.Command{
	Use:   "lines <file> <section>",
	Short: "Print a section's raw passthrough lines",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigLines,
}

var configFilesCmd = &cobra.Command{
	Use:   "files",
	Short: "List the settings files Dolphin has",
	Args:  cobra.NoArgs,
	RunE:  runConfigFiles,
}

func init() {
	configCmd.AddCommand(configGetCmd, configSetCmd, configDeleteCmd, configKeysCmd, configLinesCmd, configFilesCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	p, err := paths()
	if err != nil {
		return err
	}

	value, err := settingsService(p).GetKey(args[0], args[1], args[2], "")
	if err != nil {
		return errors.SettingsError("read", err)
	}
	fmt.Println(value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	p, err := paths()
	if err != nil {
		return err
	}

	file, section, key, value := args[0], args[1], args[2], args[3]
	if err := settingsService(p).SetKey(file, section, key, value); err != nil {
		return errors.SettingsError("write", err)
	}

	_ = auditLogger(p).LogEvent(audit.EventSettings, audit.ScopeLauncher,
		fmt.Sprintf("%s [%s] %s=%s", file, section, key, value))

	logSuccess("%s [%s] %s = %s", file, section, key, value)
	return nil
}

func runConfigDelete(cmd *cobra.Command, args []string) error {
	p, err := paths()
	if err != nil {
		return err
	}

	removed, err := settingsService(p).DeleteKey(args[0], args[1], args[2])
	if err != nil {
		return errors.SettingsError("delete", err)
	}
	if !removed {
		logWarning("%s has no key %s in [%s]", args[0], args[2], args[1])
		return nil
	}
	logSuccess("Removed %s from [%s] in %s", args[2], args[1], args[0])
	return nil
}

func runConfigKeys(cmd *cobra.Command, args []string) error {
	p, err := paths()
	if err != nil {
		return err
	}

	keys, err := settingsService(p).GetKeys(args[0], args[1])
	if err != nil {
		return errors.SettingsError("read", err)
	}
	for _, key := range keys {
		fmt.Println(key)
	}
	return nil
}

func runConfigLines(cmd *cobra.Command, args []string) error {
	p, err := paths()
	if err != nil {
		return err
	}

	lines, err := settingsService(p).GetLines(args[0], args[1], false)
	if err != nil {
		return errors.SettingsError("read", err)
	}
	if len(lines) > 0 {
		fmt.Println(strings.Join(lines, "\n"))
	}
	return nil
}

func runConfigFiles(cmd *cobra.Command, args []string) error {
	p, err := paths()
	if err != nil {
		return err
	}

	files, err := settingsService(p).ListFiles()
	if err != nil {
		return errors.SettingsError("list", err)
	}
	if len(files) == 0 {
		logInfo("No settings files yet under %s", p.DolphinConfigDir)
		return nil
	}
	for _, f := range files {
		fmt.Println(f)
	}
	return nil
}
