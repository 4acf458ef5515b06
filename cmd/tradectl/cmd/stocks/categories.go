package stocks

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List stock categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		categories, err := client.ListStockCategories(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list categories: %s", sdk.ErrorMessage(err))
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
		for _, c := range categories {
			desc := c.Description
			if desc == "" {
				desc = "-"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\n", c.ID, c.Name, desc)
		}
		w.Flush()
		return nil
	},
}
