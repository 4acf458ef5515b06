package plans

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
	Short: "List all plans, including inactive ones",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		plans, err := client.ListAdminPlans(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list plans: %s", sdk.ErrorMessage(err))
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSLUG\tMONTHLY\tYEARLY\tACTIVE\tDEFAULT")
		for _, p := range plans {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%t\t%t\n",
				p.ID, p.Name, p.Slug, p.MonthlyPrice, p.YearlyPrice, p.IsActive, p.IsDefault)
		}
		w.Flush()
		return nil
	},
}
