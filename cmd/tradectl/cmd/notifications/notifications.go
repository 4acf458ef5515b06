package notifications

import "github.com/spf13/cobra"

// NotificationsCmd is the parent command for in-app notifications.
var NotificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "Read your notifications",
}

func init() {
	NotificationsCmd.AddCommand(listCmd)
	NotificationsCmd.AddCommand(readCmd)
}
