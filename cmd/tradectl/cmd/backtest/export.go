package backtest

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Export a run's trades as CSV",
	Long: `Downloads the trades of a backtest run as CSV. The file is written to
--output, or to stdout when no output path is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid run id %q", args[0])
		}

		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		csv, err := client.ExportBacktestCSV(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to export run: %s", sdk.ErrorMessage(err))
		}

		if exportOutput == "" {
			os.Stdout.Write(csv)
			return nil
		}
		if err := os.WriteFile(exportOutput, csv, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOutput, err)
		}
		pterm.Success.Printf("Wrote %d bytes to %s\n", len(csv), exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "File to write the CSV to")
}
