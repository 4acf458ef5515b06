package backtest

import "github.com/spf13/cobra"

// BacktestCmd is the parent command for strategy backtesting.
var BacktestCmd = &cobra.Command{
	Use:   "backtest",
	Short: "Run and inspect backtests",
}

func init() {
	BacktestCmd.AddCommand(runCmd)
	BacktestCmd.AddCommand(listCmd)
	BacktestCmd.AddCommand(getCmd)
	BacktestCmd.AddCommand(resultsCmd)
	BacktestCmd.AddCommand(exportCmd)
	BacktestCmd.AddCommand(deleteCmd)
}
