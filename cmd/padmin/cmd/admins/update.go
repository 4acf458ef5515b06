package admins

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var (
	updateName         string
	updateRole         string
	updateActive       bool
	updateManageStocks bool
	updateManageConfig bool
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an operator account",
	Long: `Updates the given fields of an operator account. Flags that are not set
leave the corresponding field unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid admin id %q", args[0])
		}

		var input sdk.AdminUpdateInput
		if cmd.Flags().Changed("name") {
			input.Name = &updateName
		}
		if cmd.Flags().Changed("role") {
			input.Role = &updateRole
		}
		if cmd.Flags().Changed("active") {
			input.IsActive = &updateActive
		}
		if cmd.Flags().Changed("manage-stocks") {
			input.CanManageStocks = &updateManageStocks
		}
		if cmd.Flags().Changed("manage-config") {
			input.CanManageConfig = &updateManageConfig
		}

		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		admin, err := client.UpdateAdmin(cmd.Context(), id, input)
		if err != nil {
			return fmt.Errorf("failed to update admin: %s", sdk.ErrorMessage(err))
		}

		pterm.Success.Printf("Updated admin %s (id %d)\n", admin.Email, admin.ID)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateName, "name", "", "Display name")
	updateCmd.Flags().StringVar(&updateRole, "role", "", "Role (admin, moderator or analyst)")
	updateCmd.Flags().BoolVar(&updateActive, "active", true, "Whether the account can sign in")
	updateCmd.Flags().BoolVar(&updateManageStocks, "manage-stocks", false, "Grant stock management")
	updateCmd.Flags().BoolVar(&updateManageConfig, "manage-config", false, "Grant config management")
}
