package strategies

import (
	"encoding/json"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var (
	updateName        string
	updateDescription string
	updateStatus      string
	updateLogic       string
)

var updateCmd = &cobra.Command{
	Use:   "update <code>",
	Short: "Update a platform strategy",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		code := args[0]
		input := sdk.StrategyMasterInput{
			Code:        code,
			Name:        updateName,
			Description: updateDescription,
			Status:      updateStatus,
		}
		if updateLogic != "" {
			if err := json.Unmarshal([]byte(updateLogic), &input.Logic); err != nil {
				return fmt.Errorf("--logic must be a JSON object: %w", err)
			}
		}

		strategy, err := client.UpdateStrategyMaster(cmd.Context(), code, input)
		if err != nil {
			return fmt.Errorf("failed to update strategy: %s", sdk.ErrorMessage(err))
		}

		pterm.Success.Printf("Updated strategy %s\n", strategy.Code)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateName, "name", "", "Display name")
	updateCmd.Flags().StringVar(&updateDescription, "description", "", "Description")
	updateCmd.Flags().StringVar(&updateStatus, "status", "", "Strategy status")
	updateCmd.Flags().StringVar(&updateLogic, "logic", "", "Strategy logic as a JSON object")
	updateCmd.MarkFlagRequired("name")
}
