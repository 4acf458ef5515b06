package options

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var contractsOpts sdk.OptionContractsOptions

var contractsCmd = &cobra.Command{
	Use:   "contracts",
	Short: "List option contracts",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		contracts, err := client.ListOptionContracts(cmd.Context(), contractsOpts)
		if err != nil {
			return fmt.Errorf("failed to list contracts: %s", sdk.ErrorMessage(err))
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tUNDERLYING\tTYPE\tEXPIRY\tCALL/PUT\tSTRIKE")
		for _, c := range contracts {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
				c.ID, c.UnderlyingSymbol, c.UnderlyingType, c.ExpiryDate, c.OptionType, c.OptionStrike)
		}
		w.Flush()
		return nil
	},
}

func init() {
	contractsCmd.Flags().StringVar(&contractsOpts.Underlying, "underlying", "", "Underlying symbol")
	contractsCmd.Flags().StringVar(&contractsOpts.UnderlyingType, "underlying-type", "", "Underlying type (stock or sector)")
	contractsCmd.Flags().StringVar(&contractsOpts.ExpiryDate, "expiry", "", "Expiry date (YYYY-MM-DD)")
	contractsCmd.Flags().StringVar(&contractsOpts.OptionType, "type", "", "Option type (CE or PE)")
}
