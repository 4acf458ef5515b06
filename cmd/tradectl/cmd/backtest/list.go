package backtest

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
	Short: "List backtest runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		runs, err := client.ListBacktestRuns(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list runs: %s", sdk.ErrorMessage(err))
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tRUN_ID\tSTRATEGY\tSTATUS\tRANGE\tFINAL")
		for _, r := range runs {
			final := r.FinalWalletAmount
			if final == "" {
				final = "-"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s..%s\t%s\n",
				r.ID, r.RunID, r.Strategy, r.Status, r.StartDate, r.EndDate, final)
		}
		w.Flush()
		return nil
	},
}
