package plans

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid plan id %q", args[0])
		}

		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		plan, err := client.GetAdminPlan(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to get plan: %s", sdk.ErrorMessage(err))
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "ID\t%d\n", plan.ID)
		fmt.Fprintf(w, "NAME\t%s\n", plan.Name)
		fmt.Fprintf(w, "SLUG\t%s\n", plan.Slug)
		fmt.Fprintf(w, "MONTHLY\t%s\n", plan.MonthlyPrice)
		fmt.Fprintf(w, "YEARLY\t%s\n", plan.YearlyPrice)
		fmt.Fprintf(w, "ACTIVE\t%t\n", plan.IsActive)
		fmt.Fprintf(w, "DEFAULT\t%t\n", plan.IsDefault)
		if len(plan.Features) > 0 {
			fmt.Fprintf(w, "FEATURES\t%s\n", strings.Join(plan.Features, ", "))
		}
		w.Flush()
		return nil
	},
}
