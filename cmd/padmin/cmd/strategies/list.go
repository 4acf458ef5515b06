package strategies

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
	Short: "List platform strategies",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		strategies, err := client.ListStrategyMasters(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list strategies: %s", sdk.ErrorMessage(err))
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CODE\tNAME\tTYPE\tSTATUS")
		for _, s := range strategies {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.Code, s.Name, s.Type, s.Status)
		}
		w.Flush()
		return nil
	},
}
