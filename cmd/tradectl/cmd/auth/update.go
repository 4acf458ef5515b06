package auth

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var updateEmail string

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := cliutil.CurrentSession(cmd)
		if err != nil {
			return err
		}
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		user, err := client.UpdateProfile(cmd.Context(), sdk.ProfileUpdateInput{Email: updateEmail})
		if err != nil {
			return fmt.Errorf("failed to update profile: %s", sdk.ErrorMessage(err))
		}

		// Refresh the stored record so later commands show the new email.
		st := sess.State()
		if st.Authenticated {
			if err := sess.SetCredentials(user, st.Token); err != nil {
				return err
			}
		}

		pterm.Success.Printf("Profile updated (%s)\n", user.Email)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateEmail, "email", "", "New account email")
	updateCmd.MarkFlagRequired("email")
}
