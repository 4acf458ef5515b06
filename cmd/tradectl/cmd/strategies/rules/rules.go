package rules

import "github.com/spf13/cobra"

// RulesCmd is the parent command for user-authored rule-based strategies.
var RulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Manage your rule-based strategies",
}

func init() {
	RulesCmd.AddCommand(listCmd)
	RulesCmd.AddCommand(getCmd)
	RulesCmd.AddCommand(createCmd)
	RulesCmd.AddCommand(updateCmd)
	RulesCmd.AddCommand(deleteCmd)
}
