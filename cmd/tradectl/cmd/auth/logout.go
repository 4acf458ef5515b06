package auth

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out from papertrade",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := cliutil.CurrentSession(cmd)
		if err != nil {
			return err
		}
		if err := sess.Logout(); err != nil {
			return err
		}
		pterm.Info.Println("Logged out")
		return nil
	},
}
