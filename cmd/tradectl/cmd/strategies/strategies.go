package strategies

import (
	"github.com/spf13/cobra"

	"github.com/papertrade/console/cmd/tradectl/cmd/strategies/rules"
)

// StrategiesCmd is the parent command for browsing platform strategies and
// their computed signals.
var StrategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "Browse strategies and signals",
}

func init() {
	StrategiesCmd.AddCommand(listCmd)
	StrategiesCmd.AddCommand(signalsCmd)
	StrategiesCmd.AddCommand(performanceCmd)
	StrategiesCmd.AddCommand(rules.RulesCmd)
}
