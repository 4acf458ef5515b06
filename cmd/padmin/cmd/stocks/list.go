package stocks

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var listOpts sdk.ListStocksOptions

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List instruments",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		stocks, err := client.ListStocks(cmd.Context(), listOpts)
		if err != nil {
			return fmt.Errorf("failed to list stocks: %s", sdk.ErrorMessage(err))
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSYMBOL\tNAME\tCATEGORY\tACTIVE")
		for _, s := range stocks {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\n", s.ID, s.Symbol, s.Name, s.Category, s.IsActive)
		}
		w.Flush()
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listOpts.Search, "search", "", "Filter by symbol or name")
	listCmd.Flags().StringVar(&listOpts.Category, "category", "", "Filter by category")
	listCmd.Flags().IntVar(&listOpts.Page, "page", 0, "Page number")
	listCmd.Flags().IntVar(&listOpts.PageSize, "page-size", 0, "Instruments per page")
	listCmd.Flags().StringVar(&listOpts.SortBy, "sort-by", "", "Sort field")
	listCmd.Flags().StringVar(&listOpts.Order, "order", "", "Sort order (asc or desc)")
}
