package notifications

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an announcement",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid announcement id %q", args[0])
		}

		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		if err := client.DeleteBroadcast(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete announcement: %s", sdk.ErrorMessage(err))
		}

		pterm.Success.Printf("Deleted announcement %d\n", id)
		return nil
	},
}
