package sync

import "github.com/spf13/cobra"

// SyncCmd is the parent command for market data synchronization.
var SyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Manage market data syncs",
}

func init() {
	SyncCmd.AddCommand(runCmd)
	SyncCmd.AddCommand(logsCmd)
	SyncCmd.AddCommand(statusCmd)
}
