package backtest

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <run-id> ...",
	Short: "Delete backtest runs",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids := make([]int64, 0, len(args))
		for _, arg := range args {
			id, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid run ID %q", arg)
			}
			ids = append(ids, id)
		}

		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		if len(ids) == 1 {
			err = client.DeleteBacktestRun(cmd.Context(), ids[0])
		} else {
			err = client.DeleteBacktestRuns(cmd.Context(), ids)
		}
		if err != nil {
			return fmt.Errorf("failed to delete runs: %s", sdk.ErrorMessage(err))
		}

		pterm.Success.Printf("Deleted %d run(s)\n", len(ids))
		return nil
	},
}
