package admins

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var listOpts sdk.PageOptions

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List operator accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		page, err := client.ListAdmins(cmd.Context(), listOpts)
		if err != nil {
			return fmt.Errorf("failed to list admins: %s", sdk.ErrorMessage(err))
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tEMAIL\tNAME\tROLE\tACTIVE\tSTOCKS\tCONFIG")
		for _, a := range page.Admins {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\t%t\t%t\n",
				a.ID, a.Email, a.Name, a.Role, a.IsActive, a.CanManageStocks, a.CanManageConfig)
		}
		w.Flush()
		fmt.Printf("Page %d of %d (%d admins)\n",
			page.Pagination.CurrentPage, page.Pagination.TotalPages, page.Pagination.TotalCount)
		return nil
	},
}

func init() {
	listCmd.Flags().IntVar(&listOpts.Page, "page", 1, "Page number")
	listCmd.Flags().IntVar(&listOpts.PageSize, "page-size", 25, "Accounts per page")
	listCmd.Flags().StringVar(&listOpts.SortBy, "sort-by", "", "Sort field")
	listCmd.Flags().StringVar(&listOpts.Order, "order", "", "Sort order (asc or desc)")
}
