package plans

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var createInput sdk.PlanInput

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a subscription plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		plan, err := client.CreateAdminPlan(cmd.Context(), createInput)
		if err != nil {
			return fmt.Errorf("failed to create plan: %s", sdk.ErrorMessage(err))
		}

		pterm.Success.Printf("Created plan %s (id %d)\n", plan.Name, plan.ID)
		return nil
	},
}

func init() {
	registerPlanFlags(createCmd, &createInput)
	createCmd.MarkFlagRequired("name")
	createCmd.MarkFlagRequired("slug")
	createCmd.MarkFlagRequired("monthly-price")
	createCmd.MarkFlagRequired("yearly-price")
}

// registerPlanFlags binds the shared plan fields used by create and update.
func registerPlanFlags(cmd *cobra.Command, input *sdk.PlanInput) {
	cmd.Flags().StringVar(&input.Name, "name", "", "Plan name")
	cmd.Flags().StringVar(&input.Slug, "slug", "", "URL-safe plan identifier")
	cmd.Flags().StringVar(&input.Description, "description", "", "Description")
	cmd.Flags().StringVar(&input.MonthlyPrice, "monthly-price", "", "Monthly price")
	cmd.Flags().StringVar(&input.YearlyPrice, "yearly-price", "", "Yearly price")
	cmd.Flags().IntVar(&input.Priority, "priority", 0, "Display priority")
	cmd.Flags().StringSliceVar(&input.Features, "feature", nil, "Feature slug (repeatable)")
	cmd.Flags().BoolVar(&input.IsActive, "active", true, "Whether the plan is offered")
	cmd.Flags().BoolVar(&input.IsDefault, "default", false, "Whether new users land on this plan")
	cmd.Flags().IntVar(&input.DefaultPeriodDays, "period-days", 0, "Default period length in days")
}
