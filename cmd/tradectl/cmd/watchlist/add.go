package watchlist

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var addCmd = &cobra.Command{
	Use:   "add <stock-id>",
	Short: "Add a stock to your watchlist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid stock ID %q", args[0])
		}
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		item, err := client.AddToWatchlist(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to add to watchlist: %s", sdk.ErrorMessage(err))
		}

		symbol := ""
		if item.StockDetails != nil {
			symbol = item.StockDetails.Symbol
		}
		pterm.Success.Printf("Added %s to watchlist (entry %d)\n", symbol, item.ID)
		return nil
	},
}
