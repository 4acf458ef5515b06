package sectors

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var updateInput sdk.SectorInput

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace a sector index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid sector id %q", args[0])
		}

		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		sector, err := client.UpdateSector(cmd.Context(), id, updateInput)
		if err != nil {
			return fmt.Errorf("failed to update sector: %s", sdk.ErrorMessage(err))
		}

		pterm.Success.Printf("Updated sector %s (id %d)\n", sector.Enum, sector.ID)
		return nil
	},
}

func init() {
	registerSectorFlags(updateCmd, &updateInput)
	updateCmd.MarkFlagRequired("enum")
	updateCmd.MarkFlagRequired("name")
}
