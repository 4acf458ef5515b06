package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/papertrade/console/cmd/padmin/cmd/admins"
	"github.com/papertrade/console/cmd/padmin/cmd/auth"
	"github.com/papertrade/console/cmd/padmin/cmd/categories"
	configcmd "github.com/papertrade/console/cmd/padmin/cmd/config"
	"github.com/papertrade/console/cmd/padmin/cmd/coupons"
	"github.com/papertrade/console/cmd/padmin/cmd/notifications"
	"github.com/papertrade/console/cmd/padmin/cmd/plans"
	"github.com/papertrade/console/cmd/padmin/cmd/sectors"
	"github.com/papertrade/console/cmd/padmin/cmd/stocks"
	"github.com/papertrade/console/cmd/padmin/cmd/strategies"
	"github.com/papertrade/console/cmd/padmin/cmd/sync"
	"github.com/papertrade/console/cmd/padmin/cmd/users"
	"github.com/papertrade/console/internal/cliutil"
	"github.com/papertrade/console/internal/config"
	"github.com/papertrade/console/internal/session"
)

var (
	serverURL      string
	nonInteractive bool
	debug          bool
)

var rootCmd = &cobra.Command{
	Use:   "padmin",
	Short: "Papertrade admin console",
	Long: `padmin is the operator console for the papertrade platform. It manages
user and operator accounts, instruments, sectors, platform strategies,
subscription plans, coupons, configuration, announcements and market data
syncs.

Admin sessions use their own credential namespace and never interoperate
with tradectl sessions.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd.Context(), config.AdminPrefix)
		if err != nil {
			return err
		}
		if serverURL != "" {
			cfg.APIBase = serverURL
		}
		if nonInteractive {
			cfg.NonInteractive = true
		}
		if debug {
			cfg.Debug = true
		}

		logger := zerolog.Nop()
		if cfg.Debug {
			logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		}

		app := &cliutil.App{
			Config:     cfg,
			Provider:   cliutil.NewProvider(cfg, true, logger),
			LoginHint:  "padmin auth login",
			LogoutHint: "padmin auth logout",
		}
		cmd.SetContext(cliutil.InjectApp(cmd.Context(), app))

		sess, err := app.Provider.Session()
		if err != nil {
			return err
		}
		class := cliutil.Classify(cmd)
		if err := cliutil.Gate(sess, class, app.LoginHint, app.LogoutHint); err != nil {
			return err
		}
		if class == session.RoutePrivate {
			verifier, err := app.Provider.Verifier()
			if err != nil {
				return err
			}
			if err := verifier.Verify(cmd.Context()); err != nil {
				return fmt.Errorf("%s; run %q to continue", err, app.LoginHint)
			}
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Papertrade API base URL (default from PAPERTRADE_ADMIN_API_BASE)")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "Disable interactive prompts (also PAPERTRADE_ADMIN_NON_INTERACTIVE=true)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log API requests and responses to stderr")
	rootCmd.AddCommand(auth.AuthCmd)
	rootCmd.AddCommand(users.UsersCmd)
	rootCmd.AddCommand(admins.AdminsCmd)
	rootCmd.AddCommand(stocks.StocksCmd)
	rootCmd.AddCommand(categories.CategoriesCmd)
	rootCmd.AddCommand(sectors.SectorsCmd)
	rootCmd.AddCommand(strategies.StrategiesCmd)
	rootCmd.AddCommand(plans.PlansCmd)
	rootCmd.AddCommand(coupons.CouponsCmd)
	rootCmd.AddCommand(configcmd.ConfigCmd)
	rootCmd.AddCommand(notifications.NotificationsCmd)
	rootCmd.AddCommand(sync.SyncCmd)
}
