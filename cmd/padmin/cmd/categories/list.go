package categories

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stock categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		cats, err := client.ListStockCategories(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list categories: %s", sdk.ErrorMessage(err))
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
		for _, c := range cats {
			fmt.Fprintf(w, "%d\t%s\t%s\n", c.ID, c.Name, c.Description)
		}
		w.Flush()
		return nil
	},
}
