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
	Short: "Display admin session status",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		user, err := client.AdminProfile(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch profile: %s", sdk.ErrorMessage(err))
		}

		pterm.DefaultSection.Println("Admin session")
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "EMAIL\t%s\n", user.Email)
		fmt.Fprintf(w, "ROLE\t%s\n", user.Role)
		if user.CanManageStocks != nil {
			fmt.Fprintf(w, "MANAGE STOCKS\t%t\n", *user.CanManageStocks)
		}
		if user.CanManageConfig != nil {
			fmt.Fprintf(w, "MANAGE CONFIG\t%t\n", *user.CanManageConfig)
		}
		w.Flush()
		return nil
	},
}
