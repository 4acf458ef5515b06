package users

import "github.com/spf13/cobra"

// UsersCmd is the parent command for end-user account administration.
var UsersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage end-user accounts",
}

func init() {
	UsersCmd.AddCommand(listCmd)
	UsersCmd.AddCommand(toggleCmd)
}
