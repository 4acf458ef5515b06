package portfolio

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var (
	tradeStockID  int64
	tradeQuantity int64
	tradeAction   string
)

var tradeCmd = &cobra.Command{
	Use:   "trade",
	Short: "Place a paper trade",
	Long:  `Places a BUY or SELL order against the paper wallet.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		tx, err := client.Trade(cmd.Context(), sdk.TradeRequest{
			StockID:  tradeStockID,
			Quantity: tradeQuantity,
			Action:   strings.ToUpper(tradeAction),
		})
		if err != nil {
			return fmt.Errorf("trade failed: %s", sdk.ErrorMessage(err))
		}

		pterm.Success.Printf("%s %d x %s at %s (total %s)\n",
			tx.Type, tx.Quantity, tx.StockSymbol, tx.Price, tx.Amount)
		return nil
	},
}

func init() {
	tradeCmd.Flags().Int64Var(&tradeStockID, "stock", 0, "Stock ID to trade")
	tradeCmd.Flags().Int64Var(&tradeQuantity, "qty", 0, "Quantity")
	tradeCmd.Flags().StringVar(&tradeAction, "action", "", "BUY or SELL")
	tradeCmd.MarkFlagRequired("stock")
	tradeCmd.MarkFlagRequired("qty")
	tradeCmd.MarkFlagRequired("action")
}
