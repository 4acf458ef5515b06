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
	createCode        string
	createName        string
	createDescription string
	createStatus      string
	createType        string
	createLogic       string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a new platform strategy",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		input := sdk.StrategyMasterInput{
			Code:        createCode,
			Name:        createName,
			Description: createDescription,
			Status:      createStatus,
			Type:        createType,
		}
		if createLogic != "" {
			if err := json.Unmarshal([]byte(createLogic), &input.Logic); err != nil {
				return fmt.Errorf("--logic must be a JSON object: %w", err)
			}
		}

		strategy, err := client.CreateStrategyMaster(cmd.Context(), input)
		if err != nil {
			return fmt.Errorf("failed to create strategy: %s", sdk.ErrorMessage(err))
		}

		pterm.Success.Printf("Created strategy %s (%s)\n", strategy.Code, strategy.Name)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createCode, "code", "", "Unique strategy code")
	createCmd.Flags().StringVar(&createName, "name", "", "Display name")
	createCmd.Flags().StringVar(&createDescription, "description", "", "Description")
	createCmd.Flags().StringVar(&createStatus, "status", "active", "Strategy status")
	createCmd.Flags().StringVar(&createType, "type", "", "Strategy type")
	createCmd.Flags().StringVar(&createLogic, "logic", "", "Strategy logic as a JSON object")
	createCmd.MarkFlagRequired("code")
	createCmd.MarkFlagRequired("name")
}
