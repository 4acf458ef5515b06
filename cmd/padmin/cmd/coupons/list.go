package coupons

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
	Short: "List coupons",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		coupons, err := client.ListCoupons(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list coupons: %s", sdk.ErrorMessage(err))
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCODE\tDISCOUNT\tVALID FROM\tVALID UNTIL\tUSED")
		for _, c := range coupons {
			used := fmt.Sprintf("%d", c.UsedCount)
			if c.MaxUsage > 0 {
				used = fmt.Sprintf("%d/%d", c.UsedCount, c.MaxUsage)
			}
			fmt.Fprintf(w, "%d\t%s\t%s%%\t%s\t%s\t%s\n",
				c.ID, c.Code, c.DiscountPercent, c.ValidFrom, c.ValidUntil, used)
		}
		w.Flush()
		return nil
	},
}
