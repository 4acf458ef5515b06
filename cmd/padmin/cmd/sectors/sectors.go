package sectors

import "github.com/spf13/cobra"

// SectorsCmd is the parent command for sector index administration.
var SectorsCmd = &cobra.Command{
	Use:   "sectors",
	Short: "Manage sector indices",
}

func init() {
	SectorsCmd.AddCommand(listCmd)
	SectorsCmd.AddCommand(createCmd)
	SectorsCmd.AddCommand(updateCmd)
	SectorsCmd.AddCommand(deleteCmd)
}
