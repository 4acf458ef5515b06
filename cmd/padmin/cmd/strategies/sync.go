package strategies

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Recompute strategy signals server-side",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		if err := client.SyncStrategies(cmd.Context()); err != nil {
			return fmt.Errorf("strategy sync failed: %s", sdk.ErrorMessage(err))
		}

		pterm.Success.Println("Strategy sync triggered")
		return nil
	},
}
