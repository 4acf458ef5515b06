package strategies

import "github.com/spf13/cobra"

// StrategiesCmd is the parent command for platform strategy management.
var StrategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "Manage platform trading strategies",
}

func init() {
	StrategiesCmd.AddCommand(listCmd)
	StrategiesCmd.AddCommand(createCmd)
	StrategiesCmd.AddCommand(updateCmd)
	StrategiesCmd.AddCommand(deleteCmd)
	StrategiesCmd.AddCommand(syncCmd)
}
