package config

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set the value of an existing configuration key",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		entry, err := client.UpdateConfig(cmd.Context(), args[0], args[1])
		if err != nil {
			return fmt.Errorf("failed to update config: %s", sdk.ErrorMessage(err))
		}

		pterm.Success.Printf("Set config %s = %s\n", entry.Key, entry.Value)
		return nil
	},
}
