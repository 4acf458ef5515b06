package stocks

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var updateInput sdk.StockInput

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace an instrument",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid stock id %q", args[0])
		}

		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		stock, err := client.UpdateStock(cmd.Context(), id, updateInput)
		if err != nil {
			return fmt.Errorf("failed to update stock: %s", sdk.ErrorMessage(err))
		}

		pterm.Success.Printf("Updated stock %s (id %d)\n", stock.Symbol, stock.ID)
		return nil
	},
}

func init() {
	registerStockFlags(updateCmd, &updateInput)
	updateCmd.MarkFlagRequired("symbol")
	updateCmd.MarkFlagRequired("name")
}
