package rules

import (
	"encoding/json"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var (
	createName        string
	createDescription string
	createRules       string
	createPublic      bool
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a rule-based strategy",
	Long: `Saves a new rule-based strategy. --rules takes the rule definition as a
JSON object, e.g. '{"entry": {"indicator": "rsi", "below": 30}}'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rules, err := parseRules(createRules)
		if err != nil {
			return err
		}

		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		strategy, err := client.CreateRuleBasedStrategy(cmd.Context(), sdk.RuleBasedInput{
			Name:        createName,
			Description: createDescription,
			Rules:       rules,
			IsPublic:    createPublic,
		})
		if err != nil {
			return fmt.Errorf("failed to create strategy: %s", sdk.ErrorMessage(err))
		}

		pterm.Success.Printf("Created strategy %s (id %d)\n", strategy.Name, strategy.ID)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createName, "name", "", "Strategy name")
	createCmd.Flags().StringVar(&createDescription, "description", "", "Description")
	createCmd.Flags().StringVar(&createRules, "rules", "", "Rule definition as JSON")
	createCmd.Flags().BoolVar(&createPublic, "public", false, "Share with other users")
	createCmd.MarkFlagRequired("name")
	createCmd.MarkFlagRequired("rules")
}

// parseRules decodes the --rules JSON object shared by create and update.
func parseRules(raw string) (map[string]any, error) {
	var rules map[string]any
	if err := json.Unmarshal([]byte(raw), &rules); err != nil {
		return nil, fmt.Errorf("invalid rules JSON: %w", err)
	}
	return rules, nil
}
