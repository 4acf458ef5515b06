package users

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Toggle an end-user account between active and deactivated",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid user id %q", args[0])
		}

		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		user, err := client.ToggleUserStatus(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to toggle user status: %s", sdk.ErrorMessage(err))
		}

		state := "deactivated"
		if user.IsActive {
			state = "active"
		}
		pterm.Success.Printf("User %s (id %d) is now %s\n", user.Email, user.ID, state)
		return nil
	},
}
