package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/papertrade/console/cmd/tradectl/cmd/auth"
	"github.com/papertrade/console/cmd/tradectl/cmd/backtest"
	"github.com/papertrade/console/cmd/tradectl/cmd/notifications"
	"github.com/papertrade/console/cmd/tradectl/cmd/options"
	"github.com/papertrade/console/cmd/tradectl/cmd/plans"
	"github.com/papertrade/console/cmd/tradectl/cmd/portfolio"
	"github.com/papertrade/console/cmd/tradectl/cmd/sectors"
	"github.com/papertrade/console/cmd/tradectl/cmd/stocks"
	"github.com/papertrade/console/cmd/tradectl/cmd/strategies"
	"github.com/papertrade/console/cmd/tradectl/cmd/wallet"
	"github.com/papertrade/console/cmd/tradectl/cmd/watchlist"
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
	Use:   "tradectl",
	Short: "Papertrade end-user console",
	Long: `tradectl is the command-line console for the papertrade platform. Use it
to browse stocks, manage your watchlist and paper portfolio, run backtests
and manage your subscription.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd.Context(), config.UserPrefix)
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
			Provider:   cliutil.NewProvider(cfg, false, logger),
			LoginHint:  "tradectl auth login",
			LogoutHint: "tradectl auth logout",
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
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Papertrade API base URL (default from PAPERTRADE_API_BASE)")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "Disable interactive prompts (also PAPERTRADE_NON_INTERACTIVE=true)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log API requests and responses to stderr")
	rootCmd.AddCommand(auth.AuthCmd)
	rootCmd.AddCommand(stocks.StocksCmd)
	rootCmd.AddCommand(sectors.SectorsCmd)
	rootCmd.AddCommand(options.OptionsCmd)
	rootCmd.AddCommand(watchlist.WatchlistCmd)
	rootCmd.AddCommand(portfolio.PortfolioCmd)
	rootCmd.AddCommand(strategies.StrategiesCmd)
	rootCmd.AddCommand(backtest.BacktestCmd)
	rootCmd.AddCommand(notifications.NotificationsCmd)
	rootCmd.AddCommand(plans.PlansCmd)
	rootCmd.AddCommand(wallet.WalletCmd)
}
