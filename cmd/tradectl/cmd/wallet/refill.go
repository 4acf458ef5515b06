package wallet

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var refillAmount float64

var refillCmd = &cobra.Command{
	Use:   "refill",
	Short: "Top up the paper wallet",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		record, err := client.RefillWallet(cmd.Context(), refillAmount)
		if err != nil {
			return fmt.Errorf("refill failed: %s", sdk.ErrorMessage(err))
		}

		pterm.Success.Printf("Wallet refilled by %s (%s)\n", record.Amount, record.Status)
		return nil
	},
}

func init() {
	refillCmd.Flags().Float64Var(&refillAmount, "amount", 0, "Amount to add")
	refillCmd.MarkFlagRequired("amount")
}
