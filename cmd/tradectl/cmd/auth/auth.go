package auth

import (
	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
)

// AuthCmd is the parent command for session operations.
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage your session",
	Long:  `Commands for logging in and out and inspecting the current session.`,
}

func init() {
	// Login and signup establish a session and are refused while one is
	// active; logout is a public, idempotent teardown.
	cliutil.MarkAuthOnly(loginCmd)
	cliutil.MarkAuthOnly(signupCmd)
	cliutil.MarkPublic(logoutCmd)

	AuthCmd.AddCommand(loginCmd)
	AuthCmd.AddCommand(signupCmd)
	AuthCmd.AddCommand(logoutCmd)
	AuthCmd.AddCommand(statusCmd)
	AuthCmd.AddCommand(updateCmd)
}
