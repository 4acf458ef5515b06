package strategies

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var performanceOpts sdk.SignalsOptions

var performanceCmd = &cobra.Command{
	Use:   "performance",
	Short: "Show a strategy's signal hit rate",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		perf, err := client.GetSignalPerformance(cmd.Context(), performanceOpts)
		if err != nil {
			return fmt.Errorf("failed to get performance: %s", sdk.ErrorMessage(err))
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "STRATEGY\t%s\n", perf.Strategy)
		fmt.Fprintf(w, "SIGNALS\t%d\n", perf.TotalSignals)
		if perf.WinRate != "" {
			fmt.Fprintf(w, "WIN RATE\t%s\n", perf.WinRate)
		}
		if perf.AvgReturn != "" {
			fmt.Fprintf(w, "AVG RETURN\t%s\n", perf.AvgReturn)
		}
		w.Flush()
		return nil
	},
}

func init() {
	registerSignalFlags(performanceCmd, &performanceOpts)
}
