package auth

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the admin panel",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cliutil.MustFromContext(cmd.Context())
		client, err := app.Provider.Client()
		if err != nil {
			return err
		}
		sess, err := app.Provider.Session()
		if err != nil {
			return err
		}

		email, password, err := resolveCredentials(app.Config.NonInteractive, loginEmail, loginPassword)
		if err != nil {
			return err
		}

		creds, err := client.AdminLogin(cmd.Context(), sdk.LoginInput{Email: email, Password: password})
		if err != nil {
			return fmt.Errorf("login failed: %s", sdk.ErrorMessage(err))
		}
		if err := sess.SetCredentials(creds.User, creds.Token); err != nil {
			return err
		}

		pterm.Success.Printf("Logged in as %s (%s)\n", creds.User.Email, creds.User.Role)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Admin email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Admin password (prompted when omitted)")
}

func resolveCredentials(nonInteractive bool, email, password string) (string, string, error) {
	var err error
	if email == "" {
		if nonInteractive {
			return "", "", fmt.Errorf("--email is required in non-interactive mode")
		}
		email, err = pterm.DefaultInteractiveTextInput.Show("Email")
		if err != nil {
			return "", "", err
		}
	}
	if password == "" {
		if nonInteractive {
			return "", "", fmt.Errorf("--password is required in non-interactive mode")
		}
		password, err = pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password")
		if err != nil {
			return "", "", err
		}
	}
	return email, password, nil
}
