package plans

import "github.com/spf13/cobra"

// PlansCmd is the parent command for subscription management.
var PlansCmd = &cobra.Command{
	Use:   "plans",
	Short: "Browse plans and manage your subscription",
}

func init() {
	PlansCmd.AddCommand(listCmd)
	PlansCmd.AddCommand(currentCmd)
	PlansCmd.AddCommand(subscribeCmd)
}
