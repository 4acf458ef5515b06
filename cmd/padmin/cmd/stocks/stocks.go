package stocks

import "github.com/spf13/cobra"

// StocksCmd is the parent command for instrument administration.
var StocksCmd = &cobra.Command{
	Use:   "stocks",
	Short: "Manage tradable instruments",
}

func init() {
	StocksCmd.AddCommand(listCmd)
	StocksCmd.AddCommand(createCmd)
	StocksCmd.AddCommand(updateCmd)
	StocksCmd.AddCommand(deleteCmd)
}
