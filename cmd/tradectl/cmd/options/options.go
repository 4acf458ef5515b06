package options

import "github.com/spf13/cobra"

// OptionsCmd is the parent command for browsing option chains.
var OptionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Browse option chains",
}

func init() {
	OptionsCmd.AddCommand(contractsCmd)
}
