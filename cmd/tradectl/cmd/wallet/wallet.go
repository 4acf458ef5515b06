package wallet

import "github.com/spf13/cobra"

// WalletCmd is the parent command for the paper wallet.
var WalletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Manage your paper wallet",
}

func init() {
	WalletCmd.AddCommand(refillCmd)
	WalletCmd.AddCommand(recordsCmd)
}
