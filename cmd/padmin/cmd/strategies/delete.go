package strategies

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <code>",
	Short: "Delete a platform strategy",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		if err := client.DeleteStrategyMaster(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to delete strategy: %s", sdk.ErrorMessage(err))
		}

		pterm.Success.Printf("Deleted strategy %s\n", args[0])
		return nil
	},
}
