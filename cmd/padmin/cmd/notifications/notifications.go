package notifications

import "github.com/spf13/cobra"

// NotificationsCmd is the parent command for platform announcements.
var NotificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "Manage platform announcements",
}

func init() {
	NotificationsCmd.AddCommand(listCmd)
	NotificationsCmd.AddCommand(createCmd)
	NotificationsCmd.AddCommand(deleteCmd)
}
