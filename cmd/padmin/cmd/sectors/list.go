package sectors

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
	Short: "List sector indices",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		sectors, err := client.ListSectors(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list sectors: %s", sdk.ErrorMessage(err))
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tENUM\tNAME\tSTATUS\tLAST SYNC")
		for _, s := range sectors {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", s.ID, s.Enum, s.Name, s.Status, s.LastSyncedAt)
		}
		w.Flush()
		return nil
	},
}
