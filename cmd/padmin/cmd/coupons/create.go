package coupons

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var createInput sdk.CouponInput

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a coupon",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		coupon, err := client.CreateCoupon(cmd.Context(), createInput)
		if err != nil {
			return fmt.Errorf("failed to create coupon: %s", sdk.ErrorMessage(err))
		}

		pterm.Success.Printf("Created coupon %s (%s%% off)\n", coupon.Code, coupon.DiscountPercent)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createInput.Code, "code", "", "Coupon code")
	createCmd.Flags().StringVar(&createInput.DiscountPercent, "discount", "", "Discount percentage")
	createCmd.Flags().StringVar(&createInput.ValidFrom, "from", "", "Validity start date (YYYY-MM-DD)")
	createCmd.Flags().StringVar(&createInput.ValidUntil, "until", "", "Validity end date (YYYY-MM-DD)")
	createCmd.Flags().IntVar(&createInput.MaxUsage, "max-usage", 0, "Maximum redemptions (0 for unlimited)")
	createCmd.MarkFlagRequired("code")
	createCmd.MarkFlagRequired("discount")
	createCmd.MarkFlagRequired("from")
	createCmd.MarkFlagRequired("until")
}
