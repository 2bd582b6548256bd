package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/layertools/djinit/internal/output"
	"github.com/layertools/djinit/internal/store"
)

var historyFlagLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the audit log of scaffolds, mutations, and restores",
	Long: `Lists what djinit has done to this project: scaffolded applications,
configuration edits, backups, and restores, newest first.

The audit log is informational only; restore never consults it. The backup
catalog is always the backup directory listing itself.`,
	Example: `  djinit history
  djinit history --limit 50`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyFlagLimit, "limit", 20,
		"maximum events to show (0 for all)")

	RootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadProjectConfig()
	if err != nil {
		return err
	}

	if _, err := os.Stat(cfg.HistoryDBPath()); os.IsNotExist(err) {
		fmt.Println("No recorded history for this project.")
		return nil
	}

	st, err := store.New(cfg.HistoryDBPath())
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer st.Close()

	events, err := st.ListEvents(historyFlagLimit)
	if err != nil {
		return err
	}
	fmt.Print(output.RenderHistoryTable(events))
	return nil
}
