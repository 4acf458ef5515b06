package notifications

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
	Short: "List announcements",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		broadcasts, err := client.ListBroadcasts(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list announcements: %s", sdk.ErrorMessage(err))
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tTYPE\tAUDIENCE\tCREATED")
		for _, b := range broadcasts {
			audience := b.TargetAudience
			if b.TargetPlan != nil {
				audience = fmt.Sprintf("plan %d", *b.TargetPlan)
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", b.ID, b.Title, b.NotificationType, audience, b.CreatedAt)
		}
		w.Flush()
		return nil
	},
}
