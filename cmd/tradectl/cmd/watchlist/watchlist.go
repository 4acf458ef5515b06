package watchlist

import "github.com/spf13/cobra"

// WatchlistCmd is the parent command for watchlist management.
var WatchlistCmd = &cobra.Command{
	Use:   "watchlist",
	Short: "Manage your watchlist",
}

func init() {
	WatchlistCmd.AddCommand(listCmd)
	WatchlistCmd.AddCommand(addCmd)
	WatchlistCmd.AddCommand(removeCmd)
	WatchlistCmd.AddCommand(bulkUpdateCmd)
	WatchlistCmd.AddCommand(reorderCmd)
}
