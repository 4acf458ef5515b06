package sync

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show the sync journal",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		logs, err := client.ListSyncLogs(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list sync logs: %s", sdk.ErrorMessage(err))
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tKIND\tSTATUS\tSTARTED\tFINISHED")
		for _, l := range logs {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", l.ID, l.Kind, l.Status, l.StartedAt, l.FinishedAt)
		}
		w.Flush()
		return nil
	},
}
