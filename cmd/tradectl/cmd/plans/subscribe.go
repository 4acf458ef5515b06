package plans

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var (
	subscribePlan   int64
	subscribePeriod string
	subscribeCoupon string
)

var subscribeCmd = &cobra.Command{
	Use:   "subscribe",
	Short: "Subscribe to a plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		if subscribeCoupon != "" {
			validation, err := client.ValidateCoupon(cmd.Context(), subscribeCoupon, subscribePlan)
			if err != nil {
				return fmt.Errorf("coupon validation failed: %s", sdk.ErrorMessage(err))
			}
			if !validation.Valid {
				msg := validation.Message
				if msg == "" {
					msg = "coupon is not valid for this plan"
				}
				return fmt.Errorf("%s", msg)
			}
			pterm.Info.Printf("Coupon %s applied (%s%% off)\n", subscribeCoupon, validation.DiscountPercent)
		}

		sub, err := client.Subscribe(cmd.Context(), sdk.SubscribeInput{
			PlanID:     subscribePlan,
			Period:     subscribePeriod,
			CouponCode: subscribeCoupon,
		})
		if err != nil {
			return fmt.Errorf("failed to subscribe: %s", sdk.ErrorMessage(err))
		}

		name := ""
		if sub.Plan != nil {
			name = sub.Plan.Name
		}
		pterm.Success.Printf("Subscribed to %s until %s\n", name, sub.EndDate)
		return nil
	},
}

func init() {
	subscribeCmd.Flags().Int64Var(&subscribePlan, "plan", 0, "Plan ID")
	subscribeCmd.Flags().StringVar(&subscribePeriod, "period", "monthly", "Billing period (monthly or yearly)")
	subscribeCmd.Flags().StringVar(&subscribeCoupon, "coupon", "", "Coupon code")
	subscribeCmd.MarkFlagRequired("plan")
}
