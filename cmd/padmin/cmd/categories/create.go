package categories

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var createInput sdk.StockCategoryInput

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a stock category",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		cat, err := client.CreateStockCategory(cmd.Context(), createInput)
		if err != nil {
			return fmt.Errorf("failed to create category: %s", sdk.ErrorMessage(err))
		}

		pterm.Success.Printf("Created category %s (id %d)\n", cat.Name, cat.ID)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createInput.Name, "name", "", "Category name")
	createCmd.Flags().StringVar(&createInput.Description, "description", "", "Description")
	createCmd.MarkFlagRequired("name")
}
