package plans

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show your current subscription",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		sub, err := client.CurrentSubscription(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get subscription: %s", sdk.ErrorMessage(err))
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		if sub.Plan != nil {
			fmt.Fprintf(w, "PLAN\t%s\n", sub.Plan.Name)
		}
		fmt.Fprintf(w, "STATUS\t%s\n", sub.Status)
		fmt.Fprintf(w, "ENDS\t%s\n", sub.EndDate)
		w.Flush()
		return nil
	},
}
