package rules

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var (
	updateName        string
	updateDescription string
	updateRules       string
	updatePublic      bool
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace a rule-based strategy",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid strategy id %q", args[0])
		}
		rules, err := parseRules(updateRules)
		if err != nil {
			return err
		}

		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		strategy, err := client.UpdateRuleBasedStrategy(cmd.Context(), id, sdk.RuleBasedInput{
			Name:        updateName,
			Description: updateDescription,
			Rules:       rules,
			IsPublic:    updatePublic,
		})
		if err != nil {
			return fmt.Errorf("failed to update strategy: %s", sdk.ErrorMessage(err))
		}

		pterm.Success.Printf("Updated strategy %s (id %d)\n", strategy.Name, strategy.ID)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateName, "name", "", "Strategy name")
	updateCmd.Flags().StringVar(&updateDescription, "description", "", "Description")
	updateCmd.Flags().StringVar(&updateRules, "rules", "", "Rule definition as JSON")
	updateCmd.Flags().BoolVar(&updatePublic, "public", false, "Share with other users")
	updateCmd.MarkFlagRequired("name")
	updateCmd.MarkFlagRequired("rules")
}
