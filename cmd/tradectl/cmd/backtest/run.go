package backtest

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var (
	runStrategy string
	runFrom     string
	runTo       string
	runAmount   string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Submit a backtest",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		run, err := client.RunBacktest(cmd.Context(), sdk.BacktestRequest{
			Strategy:      runStrategy,
			StartDate:     runFrom,
			EndDate:       runTo,
			InitialAmount: runAmount,
		})
		if err != nil {
			return fmt.Errorf("failed to submit backtest: %s", sdk.ErrorMessage(err))
		}

		pterm.Success.Printf("Backtest %s submitted (%s)\n", run.RunID, run.Status)
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&runStrategy, "strategy", "", "Strategy code")
	runCmd.Flags().StringVar(&runFrom, "from", "", "Start date (YYYY-MM-DD)")
	runCmd.Flags().StringVar(&runTo, "to", "", "End date (YYYY-MM-DD)")
	runCmd.Flags().StringVar(&runAmount, "amount", "", "Initial wallet amount")
	runCmd.MarkFlagRequired("strategy")
	runCmd.MarkFlagRequired("from")
	runCmd.MarkFlagRequired("to")
}
