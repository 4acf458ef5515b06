package auth

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var (
	signupEmail    string
	signupPassword string
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a papertrade account",
	Long: `Registers a new account and logs in immediately. A trial subscription is
assigned automatically.`,
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

		email, password, err := resolveCredentials(app.Config.NonInteractive, signupEmail, signupPassword)
		if err != nil {
			return err
		}

		creds, err := client.Signup(cmd.Context(), sdk.SignupInput{Email: email, Password: password})
		if err != nil {
			return fmt.Errorf("signup failed: %s", sdk.ErrorMessage(err))
		}
		if err := sess.SetCredentials(creds.User, creds.Token); err != nil {
			return err
		}

		pterm.Success.Printf("Account created; logged in as %s\n", creds.User.Email)
		return nil
	},
}

func init() {
	signupCmd.Flags().StringVar(&signupEmail, "email", "", "Account email")
	signupCmd.Flags().StringVar(&signupPassword, "password", "", "Account password (prompted when omitted)")
}
