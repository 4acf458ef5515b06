package admins

import "github.com/spf13/cobra"

// AdminsCmd is the parent command for operator account administration. The
// backend restricts these endpoints to the superadmin role.
var AdminsCmd = &cobra.Command{
	Use:   "admins",
	Short: "Manage operator accounts",
}

func init() {
	AdminsCmd.AddCommand(listCmd)
	AdminsCmd.AddCommand(getCmd)
	AdminsCmd.AddCommand(createCmd)
	AdminsCmd.AddCommand(updateCmd)
	AdminsCmd.AddCommand(deleteCmd)
}
