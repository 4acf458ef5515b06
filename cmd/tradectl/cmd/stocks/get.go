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

var getCmd = &cobra.Command{
	Use:   "get <stock-id>",
	Short: "Show one stock",
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

		stock, err := client.GetStock(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to get stock: %s", sdk.ErrorMessage(err))
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "ID\t%d\n", stock.ID)
		fmt.Fprintf(w, "SYMBOL\t%s\n", stock.Symbol)
		fmt.Fprintf(w, "NAME\t%s\n", stock.Name)
		if stock.Category != "" {
			fmt.Fprintf(w, "CATEGORY\t%s\n", stock.Category)
		}
		fmt.Fprintf(w, "ACTIVE\t%t\n", stock.IsActive)
		w.Flush()
		return nil
	},
}
