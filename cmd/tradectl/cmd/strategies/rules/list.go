package rules

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
	Short: "List your rule-based strategies",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		strategies, err := client.ListRuleBasedStrategies(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list strategies: %s", sdk.ErrorMessage(err))
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPUBLIC\tCREATED")
		for _, s := range strategies {
			fmt.Fprintf(w, "%d\t%s\t%t\t%s\n", s.ID, s.Name, s.IsPublic, s.CreatedAt)
		}
		w.Flush()
		return nil
	},
}
