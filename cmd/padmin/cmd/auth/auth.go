package auth

import (
	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
)

// AuthCmd is the parent command for admin session operations.
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the admin session",
	Long:  `Commands for logging in and out of the admin panel and inspecting the session.`,
}

func init() {
	// There is no admin signup; operators are provisioned server-side.
	cliutil.MarkAuthOnly(loginCmd)
	cliutil.MarkPublic(logoutCmd)

	AuthCmd.AddCommand(loginCmd)
	AuthCmd.AddCommand(logoutCmd)
	AuthCmd.AddCommand(statusCmd)
}
