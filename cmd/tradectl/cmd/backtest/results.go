package backtest

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var resultsLimit int

var resultsCmd = &cobra.Command{
	Use:   "results <run-id>",
	Short: "Show the trades a run produced",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid run ID %q", args[0])
		}
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		results, err := client.GetBacktestResults(cmd.Context(), id, resultsLimit)
		if err != nil {
			return fmt.Errorf("failed to get results: %s", sdk.ErrorMessage(err))
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tSYMBOL\tACTION\tQTY\tPRICE\tPNL")
		for _, r := range results {
			pnl := r.PnL
			if pnl == "" {
				pnl = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
				r.Date, r.StockSymbol, r.Action, r.Quantity, r.Price, pnl)
		}
		w.Flush()
		return nil
	},
}

func init() {
	resultsCmd.Flags().IntVar(&resultsLimit, "limit", 100, "Maximum number of results")
}
