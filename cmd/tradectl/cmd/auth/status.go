package auth

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display session status",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cliutil.MustFromContext(cmd.Context())
		client, err := app.Provider.Client()
		if err != nil {
			return err
		}

		user, err := client.Profile(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch profile: %s", sdk.ErrorMessage(err))
		}

		pterm.DefaultSection.Println("Session")
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "EMAIL\t%s\n", user.Email)
		fmt.Fprintf(w, "ROLE\t%s\n", user.Role)
		if user.WalletBalance != "" {
			fmt.Fprintf(w, "WALLET\t%s\n", user.WalletBalance)
		}
		if user.IsTrialActive != nil && *user.IsTrialActive {
			days := 0
			if user.TrialDaysLeft != nil {
				days = *user.TrialDaysLeft
			}
			fmt.Fprintf(w, "TRIAL\tactive (%d days left)\n", days)
		}
		w.Flush()
		return nil
	},
}
