package rules

import (
	"encoding/json"
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
	Short: "Show one rule-based strategy",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid strategy id %q", args[0])
		}

		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		strategy, err := client.GetRuleBasedStrategy(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to get strategy: %s", sdk.ErrorMessage(err))
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "ID\t%d\n", strategy.ID)
		fmt.Fprintf(w, "NAME\t%s\n", strategy.Name)
		if strategy.Description != "" {
			fmt.Fprintf(w, "DESCRIPTION\t%s\n", strategy.Description)
		}
		fmt.Fprintf(w, "PUBLIC\t%t\n", strategy.IsPublic)
		w.Flush()

		if len(strategy.Rules) > 0 {
			rules, err := json.MarshalIndent(strategy.Rules, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to render rules: %w", err)
			}
			fmt.Println(string(rules))
		}
		return nil
	},
}
