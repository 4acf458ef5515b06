package config

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <key>",
	Short: "Delete a configuration key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		if err := client.DeleteConfig(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to delete config: %s", sdk.ErrorMessage(err))
		}

		pterm.Success.Printf("Deleted config %s\n", args[0])
		return nil
	},
}
