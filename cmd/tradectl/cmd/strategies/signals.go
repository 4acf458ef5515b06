package strategies

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var signalsOpts sdk.SignalsOptions

var signalsCmd = &cobra.Command{
	Use:   "signals",
	Short: "List computed strategy signals",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		signals, err := client.ListSignals(cmd.Context(), signalsOpts)
		if err != nil {
			return fmt.Errorf("failed to list signals: %s", sdk.ErrorMessage(err))
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tSTOCK\tSTRATEGY\tDIRECTION\tEXPECTED")
		for _, s := range signals {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				s.Date, s.StockSymbol, s.Strategy, s.Direction, s.ExpectedValue)
		}
		w.Flush()
		return nil
	},
}

func init() {
	registerSignalFlags(signalsCmd, &signalsOpts)
}

// registerSignalFlags binds the shared signal filters used by signals and
// performance.
func registerSignalFlags(cmd *cobra.Command, opts *sdk.SignalsOptions) {
	cmd.Flags().StringVar(&opts.Strategy, "strategy", "", "Strategy code")
	cmd.Flags().Int64Var(&opts.StockID, "stock", 0, "Stock ID")
	cmd.Flags().StringVar(&opts.StartDate, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.EndDate, "end", "", "End date (YYYY-MM-DD)")
}
