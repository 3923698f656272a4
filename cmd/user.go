package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RucksP/slippi-launcher/internal/audit"
	"github.com/RucksP/slippi-launcher/internal/credentials"
	"github.com/RucksP/slippi-launcher/internal/errors"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage the Slippi user credentials",
}

var userShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the logged-in user (play key is never printed)",
	Args:  cobra.NoArgs,
	RunE:  runUserShow,
}

var userImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a play-key file downloaded from slippi.gg",
	Args:  cobra.ExactArgs(1),
	RunE:  runUserImport,
}

var userLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored credentials",
	Args:  cobra.NoArgs,
	RunE:  runUserLogout,
}

func init() {
	userCmd.AddCommand(userShowCmd, userImportCmd, userLogoutCmd)
	rootCmd.AddCommand(userCmd)
}

func runUserShow(cmd *cobra.Command, args []string) error {
	p, err := paths()
	if err != nil {
		return err
	}

	store := credentials.NewStore(p.CredentialsFile)
	if !store.Exists() {
		return errors.NotLoggedIn()
	}
	user, err := store.Load()
	if err != nil {
		return errors.CredentialsError("cannot read credentials", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "uid:          %s\n", user.UID)
	fmt.Fprintf(out, "connect code: %s\n", user.ConnectCode)
	if user.DisplayName != "" {
		fmt.Fprintf(out, "display name: %s\n", user.DisplayName)
	}
	return nil
}

func runUserImport(cmd *cobra.Command, args []string) error {
	p, err := paths()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return errors.CredentialsError("cannot read play-key file", err)
	}
	var user credentials.User
	if err := json.Unmarshal(data, &user); err != nil {
		return errors.CredentialsError("play-key file is not valid JSON", err)
	}

	if err := credentials.NewStore(p.CredentialsFile).Save(&user); err != nil {
		return errors.CredentialsError("cannot store credentials", err)
	}

	_ = auditLogger(p).LogEvent(audit.EventCredentials, audit.ScopeLauncher, "imported "+user.ConnectCode)
	logSuccess("Logged in as %s", user.ConnectCode)
	return nil
}

func runUserLogout(cmd *cobra.Command, args []string) error {
	p, err := paths()
	if err != nil {
		return err
	}

	store := credentials.NewStore(p.CredentialsFile)
	if !store.Exists() {
		logInfo("Not logged in")
		return nil
	}
	if err := store.Delete(); err != nil {
		return errors.CredentialsError("cannot remove credentials", err)
	}

	_ = auditLogger(p).LogEvent(audit.EventCredentials, audit.ScopeLauncher, "logged out")
	logSuccess("Logged out")
	return nil
}
