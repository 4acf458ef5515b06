package stocks

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var (
	pricesFrom string
	pricesTo   string
)

var pricesCmd = &cobra.Command{
	Use:   "prices <stock-id>",
	Short: "Show daily price bars for a stock",
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

		prices, err := client.GetDailyPrices(cmd.Context(), sdk.DailyPricesOptions{
			StockID:   id,
			StartDate: pricesFrom,
			EndDate:   pricesTo,
		})
		if err != nil {
			return fmt.Errorf("failed to get prices: %s", sdk.ErrorMessage(err))
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tOPEN\tHIGH\tLOW\tCLOSE\tVOLUME")
		for _, p := range prices {
			fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\t%.2f\t%d\n",
				p.Date, p.OpenPrice, p.HighPrice, p.LowPrice, p.ClosePrice, p.Volume)
		}
		w.Flush()
		return nil
	},
}

func init() {
	pricesCmd.Flags().StringVar(&pricesFrom, "from", "", "Start date (YYYY-MM-DD)")
	pricesCmd.Flags().StringVar(&pricesTo, "to", "", "End date (YYYY-MM-DD)")
}
