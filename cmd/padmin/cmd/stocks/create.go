package stocks

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var createInput sdk.StockInput

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Register an instrument",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		stock, err := client.CreateStock(cmd.Context(), createInput)
		if err != nil {
			return fmt.Errorf("failed to create stock: %s", sdk.ErrorMessage(err))
		}

		pterm.Success.Printf("Created stock %s (id %d)\n", stock.Symbol, stock.ID)
		return nil
	},
}

func init() {
	registerStockFlags(createCmd, &createInput)
	createCmd.MarkFlagRequired("symbol")
	createCmd.MarkFlagRequired("name")
}

// registerStockFlags binds the shared instrument fields used by create and
// update.
func registerStockFlags(cmd *cobra.Command, input *sdk.StockInput) {
	cmd.Flags().StringVar(&input.Symbol, "symbol", "", "Ticker symbol")
	cmd.Flags().StringVar(&input.Name, "name", "", "Company name")
	cmd.Flags().StringVar(&input.ExchangeSuffix, "exchange-suffix", "", "Exchange suffix, e.g. NS")
	cmd.Flags().StringVar(&input.Status, "status", "", "Listing status")
	cmd.Flags().StringSliceVar(&input.Sectors, "sector", nil, "Sector enum (repeatable)")
	cmd.Flags().StringSliceVar(&input.Categories, "category", nil, "Category name (repeatable)")
}
