package stocks

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var (
	listSearch   string
	listCategory string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stocks",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		stocks, err := client.ListStocks(cmd.Context(), sdk.ListStocksOptions{
			Search:   listSearch,
			Category: listCategory,
		})
		if err != nil {
			return fmt.Errorf("failed to list stocks: %s", sdk.ErrorMessage(err))
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSYMBOL\tNAME\tCATEGORY")
		for _, s := range stocks {
			category := s.Category
			if category == "" {
				category = "-"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", s.ID, s.Symbol, s.Name, category)
		}
		w.Flush()
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listSearch, "search", "", "Filter by symbol or name")
	listCmd.Flags().StringVar(&listCategory, "category", "", "Filter by category")
}
