package backtest

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one backtest run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid run id %q", args[0])
		}

		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		run, err := client.GetBacktestRun(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to get run: %s", sdk.ErrorMessage(err))
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "ID\t%d\n", run.ID)
		fmt.Fprintf(w, "RUN_ID\t%s\n", run.RunID)
		fmt.Fprintf(w, "STRATEGY\t%s\n", run.Strategy)
		fmt.Fprintf(w, "STATUS\t%s\n", run.Status)
		fmt.Fprintf(w, "RANGE\t%s..%s\n", run.StartDate, run.EndDate)
		if run.InitialAmount != "" {
			fmt.Fprintf(w, "INITIAL\t%s\n", run.InitialAmount)
		}
		if run.FinalWalletAmount != "" {
			fmt.Fprintf(w, "FINAL\t%s\n", run.FinalWalletAmount)
		}
		if run.CreatedAt != "" {
			fmt.Fprintf(w, "CREATED\t%s\n", run.CreatedAt)
		}
		w.Flush()
		return nil
	},
}
