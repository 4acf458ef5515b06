package notifications

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/pkg/sdk"
)

var (
	createInput sdk.BroadcastInput
	targetPlan  int64
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Publish an announcement",
	Long: `Publishes an announcement, fanning a notification out to every user in
the target audience. With --audience plan, --plan selects the plan whose
subscribers receive it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("plan") {
			createInput.TargetPlan = &targetPlan
		}

		client, err := cliutil.Client(cmd)
		if err != nil {
			return err
		}

		broadcast, err := client.CreateBroadcast(cmd.Context(), createInput)
		if err != nil {
			return fmt.Errorf("failed to publish announcement: %s", sdk.ErrorMessage(err))
		}

		pterm.Success.Printf("Published announcement %q (id %d)\n", broadcast.Title, broadcast.ID)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createInput.Title, "title", "", "Announcement title")
	createCmd.Flags().StringVar(&createInput.Message, "message", "", "Announcement body")
	createCmd.Flags().StringVar(&createInput.NotificationType, "type", "info", "Type (info, success, warning or error)")
	createCmd.Flags().StringVar(&createInput.TargetAudience, "audience", "all", "Audience (all or plan)")
	createCmd.Flags().Int64Var(&targetPlan, "plan", 0, "Plan ID when audience is plan")
	createCmd.MarkFlagRequired("title")
	createCmd.MarkFlagRequired("message")
}
