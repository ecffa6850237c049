package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/furilabs/furios-reset/internal/config"
	"github.com/furilabs/furios-reset/pkg/errors"
	"github.com/furilabs/furios-reset/pkg/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent reset runs and their outcomes",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of runs to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "config load failed")
	}

	// Ensure database directory exists
	if err := ensureDirectories(cfg.DatabasePath, ""); err != nil {
		return err
	}

	journal, err := history.NewRepository(cfg.DatabasePath)
	if err != nil {
		return errors.Wrap(err, "journal init failed")
	}
	defer journal.Close()

	runs, err := journal.List(historyLimit)
	if err != nil {
		return errors.Wrap(err, "list failed")
	}

	if len(runs) == 0 {
		fmt.Println("No runs found")
		return nil
	}

	fmt.Printf("%-28s %-6s %-16s %-12s %-20s\n", "RUN ID", "SLOT", "OUTCOME", "REASON", "STARTED")
	fmt.Println("--------------------------------------------------------------------------------------")

	for _, run := range runs {
		slot := run.SlotSuffix
		if slot == "" {
			slot = "-"
		}
		outcome := run.Outcome
		if outcome == "" {
			outcome = "running"
		}
		reason := run.Reason
		if reason == "" {
			reason = "-"
		}

		fmt.Printf("%-28s %-6s %-16s %-12s %-20s\n",
			run.ID, slot, outcome, reason, run.CreatedAt)
	}

	return nil
}
