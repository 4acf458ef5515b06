package stocks

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id> [<id> ...]",
	Short: "Delete one or more instruments",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids := make([]int64, 0, len(args))
		for _, arg := range args {
			id, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid stock id %q", arg)
			}
			ids = append(ids, id)
		}

		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		if len(ids) == 1 {
			if err := client.DeleteStock(cmd.Context(), ids[0]); err != nil {
				return fmt.Errorf("failed to delete stock: %s", sdk.ErrorMessage(err))
			}
		} else {
			if err := client.BulkDeleteStocks(cmd.Context(), ids); err != nil {
				return fmt.Errorf("failed to delete stocks: %s", sdk.ErrorMessage(err))
			}
		}

		pterm.Success.Printf("Deleted %d stocks\n", len(ids))
		return nil
	},
}
