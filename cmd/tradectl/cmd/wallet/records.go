package wallet

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Show wallet transaction history",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		records, err := client.ListPaymentRecords(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list records: %s", sdk.ErrorMessage(err))
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tKIND\tAMOUNT\tSTATUS")
		for _, r := range records {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.CreatedAt, r.Kind, r.Amount, r.Status)
		}
		w.Flush()
		return nil
	},
}
