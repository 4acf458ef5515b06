package notifications

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var listUnread bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notifications",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		items, err := client.ListNotifications(cmd.Context(), listUnread)
		if err != nil {
			return fmt.Errorf("failed to list notifications: %s", sdk.ErrorMessage(err))
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tREAD\tDATE\tTITLE")
		for _, n := range items {
			read := " "
			if n.IsRead {
				read = "x"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", n.ID, read, n.CreatedAt, n.Title)
		}
		w.Flush()
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listUnread, "unread", false, "Only unread notifications")
}
