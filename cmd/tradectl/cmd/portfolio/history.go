package portfolio

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show trade history",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		transactions, err := client.ListTransactions(cmd.Context(), historyLimit)
		if err != nil {
			return fmt.Errorf("failed to list transactions: %s", sdk.ErrorMessage(err))
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tSYMBOL\tTYPE\tQTY\tPRICE\tAMOUNT")
		for _, t := range transactions {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
				t.CreatedAt, t.StockSymbol, t.Type, t.Quantity, t.Price, t.Amount)
		}
		w.Flush()
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 50, "Maximum number of transactions")
}
