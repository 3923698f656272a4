package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RucksP/slippi-launcher/internal/audit"
)

var (
	historyScope string
	historyClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past launcher events",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&historyScope, "scope", audit.ScopeLauncher, "Event scope to read")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "Delete the event log instead of printing it")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	p, err := paths()
	if err != nil {
		return err
	}
	log := auditLogger(p)

	if historyClear {
		if err := log.Remove(historyScope); err != nil {
			return err
		}
		logSuccess("Cleared event history for %s", historyScope)
		return nil
	}

	events, err := log.Events(historyScope)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		logInfo("No events recorded for %s", historyScope)
		return nil
	}
	for _, ev := range events {
		line := fmt.Sprintf("%s  %-11s %s", ev.Timestamp.Format("2006-01-02 15:04:05"), ev.Type, ev.Details)
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}
