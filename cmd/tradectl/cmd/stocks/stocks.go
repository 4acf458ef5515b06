package stocks

import "github.com/spf13/cobra"

// StocksCmd is the parent command for instrument browsing.
var StocksCmd = &cobra.Command{
	Use:   "stocks",
	Short: "Browse tradeable stocks",
}

func init() {
	StocksCmd.AddCommand(listCmd)
	StocksCmd.AddCommand(getCmd)
	StocksCmd.AddCommand(pricesCmd)
	StocksCmd.AddCommand(categoriesCmd)
}
