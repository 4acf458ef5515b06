package config

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
	Short: "List configuration entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		entries, err := client.ListConfigs(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list config: %s", sdk.ErrorMessage(err))
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "KEY\tVALUE\tDESCRIPTION")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\n", e.Key, e.Value, e.Description)
		}
		w.Flush()
		return nil
	},
}
