package plans

import "github.com/spf13/cobra"

// PlansCmd is the parent command for subscription plan administration.
var PlansCmd = &cobra.Command{
	Use:   "plans",
	Short: "Manage subscription plans",
}

func init() {
	PlansCmd.AddCommand(listCmd)
	PlansCmd.AddCommand(getCmd)
	PlansCmd.AddCommand(createCmd)
	PlansCmd.AddCommand(updateCmd)
	PlansCmd.AddCommand(deleteCmd)
	PlansCmd.AddCommand(featuresCmd)
}
