package sectors

import "github.com/spf13/cobra"

// SectorsCmd is the parent command for browsing sector indices.
var SectorsCmd = &cobra.Command{
	Use:   "sectors",
	Short: "Browse sector indices",
}

func init() {
	SectorsCmd.AddCommand(listCmd)
	SectorsCmd.AddCommand(pricesCmd)
}
