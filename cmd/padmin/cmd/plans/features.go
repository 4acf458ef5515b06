package plans

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var featuresCmd = &cobra.Command{
	Use:   "features",
	Short: "List the feature catalog plans are built from",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		features, err := client.ListFeatures(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list features: %s", sdk.ErrorMessage(err))
		}

		for _, f := range features {
			fmt.Println(f)
		}
		return nil
	},
}
