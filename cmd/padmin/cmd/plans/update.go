package plans

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var updateInput sdk.PlanInput

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace a subscription plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid plan id %q", args[0])
		}

		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		plan, err := client.UpdateAdminPlan(cmd.Context(), id, updateInput)
		if err != nil {
			return fmt.Errorf("failed to update plan: %s", sdk.ErrorMessage(err))
		}

		pterm.Success.Printf("Updated plan %s (id %d)\n", plan.Name, plan.ID)
		return nil
	},
}

func init() {
	registerPlanFlags(updateCmd, &updateInput)
	updateCmd.MarkFlagRequired("name")
	updateCmd.MarkFlagRequired("slug")
	updateCmd.MarkFlagRequired("monthly-price")
	updateCmd.MarkFlagRequired("yearly-price")
}
