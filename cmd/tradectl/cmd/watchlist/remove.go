package watchlist

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var removeCmd = &cobra.Command{
	Use:   "remove <entry-id>",
	Short: "Remove a watchlist entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid entry ID %q", args[0])
		}
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		if err := client.RemoveFromWatchlist(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to remove entry: %s", sdk.ErrorMessage(err))
		}
		pterm.Success.Printf("Removed entry %d\n", id)
		return nil
	},
}
