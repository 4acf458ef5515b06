package sectors

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var createInput sdk.SectorInput

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a sector index",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		sector, err := client.CreateSector(cmd.Context(), createInput)
		if err != nil {
			return fmt.Errorf("failed to create sector: %s", sdk.ErrorMessage(err))
		}

		pterm.Success.Printf("Created sector %s (id %d)\n", sector.Enum, sector.ID)
		return nil
	},
}

func init() {
	registerSectorFlags(createCmd, &createInput)
	createCmd.MarkFlagRequired("enum")
	createCmd.MarkFlagRequired("name")
}

// registerSectorFlags binds the shared sector fields used by create and
// update.
func registerSectorFlags(cmd *cobra.Command, input *sdk.SectorInput) {
	cmd.Flags().StringVar(&input.Enum, "enum", "", "Sector identifier, e.g. NIFTY_BANK")
	cmd.Flags().StringVar(&input.Name, "name", "", "Display name")
	cmd.Flags().StringVar(&input.Description, "description", "", "Description")
	cmd.Flags().StringVar(&input.Status, "status", "", "Tracking status")
}
