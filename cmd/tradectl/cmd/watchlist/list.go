package watchlist

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show your watchlist",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		items, err := client.ListWatchlist(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list watchlist: %s", sdk.ErrorMessage(err))
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tORDER\tSYMBOL\tNAME")
		for _, item := range items {
			symbol, name := "-", "-"
			if item.StockDetails != nil {
				symbol = item.StockDetails.Symbol
				name = item.StockDetails.Name
			}
			fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", item.ID, item.Order, symbol, name)
		}
		w.Flush()
		return nil
	},
}
