package watchlist

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var reorderCmd = &cobra.Command{
	Use:   "reorder <entry-id>=<position> ...",
	Short: "Reorder watchlist entries",
	Long: `Rewrites the display order of the given entries. Each argument pairs an
entry ID with its new zero-based position, e.g. "reorder 12=0 7=1".`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items := make([]sdk.WatchlistReorderItem, 0, len(args))
		for _, arg := range args {
			id, order, ok := strings.Cut(arg, "=")
			if !ok {
				return fmt.Errorf("invalid reorder argument %q, expected id=position", arg)
			}
			entryID, err := strconv.ParseInt(id, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid entry ID %q", id)
			}
			position, err := strconv.Atoi(order)
			if err != nil {
				return fmt.Errorf("invalid position %q", order)
			}
			items = append(items, sdk.WatchlistReorderItem{ID: entryID, Order: position})
		}

		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}
		if err := client.ReorderWatchlist(cmd.Context(), items); err != nil {
			return fmt.Errorf("failed to reorder watchlist: %s", sdk.ErrorMessage(err))
		}
		pterm.Success.Printf("Reordered %d entries\n", len(items))
		return nil
	},
}
