package admins

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one operator account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid admin id %q", args[0])
		}

		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		admin, err := client.GetAdmin(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to get admin: %s", sdk.ErrorMessage(err))
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "ID\t%d\n", admin.ID)
		fmt.Fprintf(w, "EMAIL\t%s\n", admin.Email)
		fmt.Fprintf(w, "NAME\t%s\n", admin.Name)
		fmt.Fprintf(w, "ROLE\t%s\n", admin.Role)
		fmt.Fprintf(w, "ACTIVE\t%t\n", admin.IsActive)
		fmt.Fprintf(w, "MANAGE STOCKS\t%t\n", admin.CanManageStocks)
		fmt.Fprintf(w, "MANAGE CONFIG\t%t\n", admin.CanManageConfig)
		if admin.LastLogin != "" {
			fmt.Fprintf(w, "LAST LOGIN\t%s\n", admin.LastLogin)
		}
		w.Flush()
		return nil
	},
}
