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
	Short: "List available plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		plans, err := client.ListPlans(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list plans: %s", sdk.ErrorMessage(err))
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tMONTHLY\tYEARLY\tDEFAULT")
		for _, p := range plans {
			def := ""
			if p.IsDefault {
				def = "yes"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", p.ID, p.Name, p.MonthlyPrice, p.YearlyPrice, def)
		}
		w.Flush()
		return nil
	},
}
