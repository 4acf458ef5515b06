package sync

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether the simulated market is open",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		status, err := client.GetMarketStatus(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get market status: %s", sdk.ErrorMessage(err))
		}

		if status.IsOpen {
			pterm.Success.Println("Market is open")
			if status.NextClose != "" {
				fmt.Printf("Closes at %s\n", status.NextClose)
			}
		} else {
			pterm.Info.Println("Market is closed")
			if status.NextOpen != "" {
				fmt.Printf("Opens at %s\n", status.NextOpen)
			}
		}
		return nil
	},
}
