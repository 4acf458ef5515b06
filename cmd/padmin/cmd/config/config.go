package config

import "github.com/spf13/cobra"

// ConfigCmd is the parent command for platform configuration.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage platform configuration",
}

func init() {
	ConfigCmd.AddCommand(listCmd)
	ConfigCmd.AddCommand(createCmd)
	ConfigCmd.AddCommand(setCmd)
	ConfigCmd.AddCommand(deleteCmd)
}
