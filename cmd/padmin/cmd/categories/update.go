package categories

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var updateInput sdk.StockCategoryInput

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace a stock category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid category id %q", args[0])
		}

		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		cat, err := client.UpdateStockCategory(cmd.Context(), id, updateInput)
		if err != nil {
			return fmt.Errorf("failed to update category: %s", sdk.ErrorMessage(err))
		}

		pterm.Success.Printf("Updated category %s (id %d)\n", cat.Name, cat.ID)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateInput.Name, "name", "", "Category name")
	updateCmd.Flags().StringVar(&updateInput.Description, "description", "", "Description")
	updateCmd.MarkFlagRequired("name")
}
