package coupons

import "github.com/spf13/cobra"

// CouponsCmd is the parent command for discount coupon administration.
var CouponsCmd = &cobra.Command{
	Use:   "coupons",
	Short: "Manage discount coupons",
}

func init() {
	CouponsCmd.AddCommand(listCmd)
	CouponsCmd.AddCommand(createCmd)
	CouponsCmd.AddCommand(deleteCmd)
}
