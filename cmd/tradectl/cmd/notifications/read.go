package notifications

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var readAll bool

var readCmd = &cobra.Command{
	Use:   "read [notification-id]",
	Short: "Mark notifications as read",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		if readAll {
			if err := client.MarkAllNotificationsRead(cmd.Context()); err != nil {
				return fmt.Errorf("failed to mark all read: %s", sdk.ErrorMessage(err))
			}
			pterm.Success.Println("All notifications marked read")
			return nil
		}

		if len(args) == 0 {
			return fmt.Errorf("a notification ID or --all is required")
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid notification ID %q", args[0])
		}
		if err := client.MarkNotificationRead(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to mark read: %s", sdk.ErrorMessage(err))
		}
		pterm.Success.Printf("Notification %d marked read\n", id)
		return nil
	},
}

func init() {
	readCmd.Flags().BoolVar(&readAll, "all", false, "Mark every notification read")
}
