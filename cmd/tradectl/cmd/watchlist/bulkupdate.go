package watchlist

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var (
	bulkAdd    []int64
	bulkRemove []int64
)

var bulkUpdateCmd = &cobra.Command{
	Use:   "bulk-update",
	Short: "Add and remove several stocks in one call",
	Long: `Applies a batch of watchlist changes atomically. --add and --remove take
stock IDs and may be repeated or comma-separated.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(bulkAdd) == 0 && len(bulkRemove) == 0 {
			return fmt.Errorf("nothing to do, pass --add or --remove")
		}

		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}
		if err := client.BulkUpdateWatchlist(cmd.Context(), bulkAdd, bulkRemove); err != nil {
			return fmt.Errorf("failed to update watchlist: %s", sdk.ErrorMessage(err))
		}
		pterm.Success.Printf("Added %d and removed %d stocks\n", len(bulkAdd), len(bulkRemove))
		return nil
	},
}

func init() {
	bulkUpdateCmd.Flags().Int64SliceVar(&bulkAdd, "add", nil, "Stock ID to add (repeatable)")
	bulkUpdateCmd.Flags().Int64SliceVar(&bulkRemove, "remove", nil, "Stock ID to remove (repeatable)")
}
