package sync

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var (
	runStartDate string
	runEndDate   string
	runSymbols   []string
	runHard      bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Trigger a market data sync",
	Long: `Triggers a market data sync on the backend. By default the sync is
incremental; --hard replaces existing data in the selected range.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		opts := sdk.SyncOptions{
			StartDate: runStartDate,
			EndDate:   runEndDate,
			Symbols:   runSymbols,
		}

		if runHard {
			err = client.TriggerHardSync(cmd.Context(), opts)
		} else {
			err = client.TriggerSync(cmd.Context(), opts)
		}
		if err != nil {
			return fmt.Errorf("sync failed: %s", sdk.ErrorMessage(err))
		}

		kind := "Incremental"
		if runHard {
			kind = "Hard"
		}
		pterm.Success.Printf("%s sync triggered\n", kind)
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&runStartDate, "start", "", "Start date (YYYY-MM-DD)")
	runCmd.Flags().StringVar(&runEndDate, "end", "", "End date (YYYY-MM-DD)")
	runCmd.Flags().StringSliceVar(&runSymbols, "symbol", nil, "Restrict to a symbol (repeatable)")
	runCmd.Flags().BoolVar(&runHard, "hard", false, "Replace existing data in range")
}
