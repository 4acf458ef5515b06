package coupons

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a coupon",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid coupon id %q", args[0])
		}

		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		if err := client.DeleteCoupon(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete coupon: %s", sdk.ErrorMessage(err))
		}

		pterm.Success.Printf("Deleted coupon %d\n", id)
		return nil
	},
}
