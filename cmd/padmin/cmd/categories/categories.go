package categories

import "github.com/spf13/cobra"

// CategoriesCmd is the parent command for stock category administration.
var CategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Manage stock browsing categories",
}

func init() {
	CategoriesCmd.AddCommand(listCmd)
	CategoriesCmd.AddCommand(createCmd)
	CategoriesCmd.AddCommand(updateCmd)
	CategoriesCmd.AddCommand(deleteCmd)
}
