package sectors

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var pricesOpts sdk.SectorPricesOptions

var pricesCmd = &cobra.Command{
	Use:   "prices <sector-id>",
	Short: "Show daily bars for a sector index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid sector id %q", args[0])
		}
		pricesOpts.SectorID = id

		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		bars, err := client.GetSectorDailyPrices(cmd.Context(), pricesOpts)
		if err != nil {
			return fmt.Errorf("failed to get sector prices: %s", sdk.ErrorMessage(err))
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tOPEN\tHIGH\tLOW\tCLOSE")
		for _, b := range bars {
			fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\t%.2f\n",
				b.Date, b.OpenPrice, b.HighPrice, b.LowPrice, b.ClosePrice)
		}
		w.Flush()
		return nil
	},
}

func init() {
	pricesCmd.Flags().StringVar(&pricesOpts.StartDate, "start", "", "Start date (YYYY-MM-DD)")
	pricesCmd.Flags().StringVar(&pricesOpts.EndDate, "end", "", "End date (YYYY-MM-DD)")
}
