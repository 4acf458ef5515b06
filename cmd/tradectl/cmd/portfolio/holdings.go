package portfolio

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var holdingsCmd = &cobra.Command{
	Use:   "holdings",
	Short: "Show current positions",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		holdings, err := client.ListHoldings(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list holdings: %s", sdk.ErrorMessage(err))
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SYMBOL\tQTY\tAVG_PRICE\tINVESTED")
		for _, h := range holdings {
			symbol := "-"
			if h.StockDetails != nil {
				symbol = h.StockDetails.Symbol
			}
			fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", symbol, h.Quantity, h.AverageBuyPrice, h.InvestedValue)
		}
		w.Flush()
		return nil
	},
}
