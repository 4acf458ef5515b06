package portfolio

import "github.com/spf13/cobra"

// PortfolioCmd is the parent command for the paper portfolio.
var PortfolioCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Manage your paper portfolio",
}

func init() {
	PortfolioCmd.AddCommand(holdingsCmd)
	PortfolioCmd.AddCommand(historyCmd)
	PortfolioCmd.AddCommand(tradeCmd)
}
