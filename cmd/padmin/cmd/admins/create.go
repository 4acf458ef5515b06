package admins

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var createInput sdk.AdminCreateInput

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Provision an operator account",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		admin, err := client.CreateAdmin(cmd.Context(), createInput)
		if err != nil {
			return fmt.Errorf("failed to create admin: %s", sdk.ErrorMessage(err))
		}

		pterm.Success.Printf("Created admin %s (id %d)\n", admin.Email, admin.ID)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createInput.Email, "email", "", "Login email")
	createCmd.Flags().StringVar(&createInput.Password, "password", "", "Initial password")
	createCmd.Flags().StringVar(&createInput.Name, "name", "", "Display name")
	createCmd.Flags().StringVar(&createInput.Role, "role", "admin", "Role (admin, moderator or analyst)")
	createCmd.Flags().BoolVar(&createInput.CanManageStocks, "manage-stocks", false, "Grant stock management")
	createCmd.Flags().BoolVar(&createInput.CanManageConfig, "manage-config", false, "Grant config management")
	createCmd.MarkFlagRequired("email")
	createCmd.MarkFlagRequired("password")
	createCmd.MarkFlagRequired("name")
}
