package config

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var createDescription string

var createCmd = &cobra.Command{
	Use:   "create <key> <value>",
	Short: "Create a configuration entry",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		entry, err := client.CreateConfig(cmd.Context(), sdk.ConfigInput{
			Key:         args[0],
			Value:       args[1],
			Description: createDescription,
		})
		if err != nil {
			return fmt.Errorf("failed to create config: %s", sdk.ErrorMessage(err))
		}

		pterm.Success.Printf("Created config %s = %s\n", entry.Key, entry.Value)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createDescription, "description", "", "What this key controls")
}
