package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/ynab-payee-manager/internal/client"
	"github.com/MKhiriev/ynab-payee-manager/internal/config"
	"github.com/MKhiriev/ynab-payee-manager/internal/logger"
	"github.com/MKhiriev/ynab-payee-manager/internal/store"
	"github.com/MKhiriev/ynab-payee-manager/models"
)

const appName = "ynab-payee-manager"

// cli carries the state shared by all commands. setup fills app and log
// before any command that touches the cache runs.
type cli struct {
	flags     *config.FlagValues
	buildInfo models.AppBuildInfo

	cfg      *config.ClientConfig
	app      *client.App
	log      *logger.Logger
	closeLog func() error
}

func newRootCmd(buildInfo models.AppBuildInfo) *cobra.Command {
	c := &cli{buildInfo: buildInfo}

	root := &cobra.Command{
		Use:                appName,
		Short:              "Cache YNAB payees and transactions locally and browse them",
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  c.setup,
		PersistentPostRunE: c.teardown,
		RunE:               c.runTUI,
	}
	c.flags = config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		c.tuiCmd(),
		c.syncCmd(),
		c.payeesCmd(),
		c.transactionsCmd(),
		c.budgetsCmd(),
		c.serveCmd(),
		c.tokenCmd(),
		c.versionCmd(),
	)

	return root
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.GetClientConfig(c.flags.Config())
	if err != nil {
		return err
	}
	c.cfg = cfg

	c.log, c.closeLog = logger.NewClientLogger(appName, cfg.Log.File)
	logger.SetLevel(cfg.Log.Level)
	c.log.Debug().Str("command", cmd.Name()).Msg("starting")

	c.app, err = client.NewApp(cmd.Context(), cfg, c.buildInfo, c.log)
	return err
}

func (c *cli) teardown(*cobra.Command, []string) error {
	var errs []error
	if c.app != nil {
		errs = append(errs, c.app.Close())
	}
	if c.closeLog != nil {
		errs = append(errs, c.closeLog())
	}
	return errors.Join(errs...)
}

func (c *cli) runTUI(cmd *cobra.Command, _ []string) error {
	return c.app.Run(cmd.Context())
}

func (c *cli) tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the terminal UI (default)",
		Args:  cobra.NoArgs,
		RunE:  c.runTUI,
	}
}

func (c *cli) syncCmd() *cobra.Command {
	var full bool
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Refresh the cache from the budgeting API once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			results, err := c.app.Sync(cmd.Context(), full)
			renderSyncResults(cmd.OutOrStdout(), results)
			return err
		},
	}
	cmd.Flags().BoolVar(&full, "full", false, "Replace the cache instead of fetching changes only")
	return cmd
}

func (c *cli) payeesCmd() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "payees",
		Short: "Print the cached payees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			payees, knowledge, err := c.app.Payees(cmd.Context(), name)
			if errors.Is(err, store.ErrServerKnowledgeNotFound) {
				fmt.Fprintln(cmd.OutOrStdout(), "the cache was never synced, run `"+appName+" sync`")
				return nil
			}
			if err != nil {
				return err
			}
			renderPayees(cmd.OutOrStdout(), payees, knowledge)
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "Show only payees whose name contains this text")
	return cmd
}

func (c *cli) transactionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transactions",
		Short: "Print the cached transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			transactions, knowledge, err := c.app.Transactions(cmd.Context())
			if errors.Is(err, store.ErrServerKnowledgeNotFound) {
				fmt.Fprintln(cmd.OutOrStdout(), "the cache was never synced, run `"+appName+" sync`")
				return nil
			}
			if err != nil {
				return err
			}
			renderTransactions(cmd.OutOrStdout(), transactions, knowledge)
			return nil
		},
	}
}

func (c *cli) budgetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "budgets",
		Short: "List the budgets visible to the API token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			budgets, err := c.app.Budgets(cmd.Context())
			if err != nil {
				return err
			}
			renderBudgets(cmd.OutOrStdout(), budgets)
			return nil
		},
	}
}

func (c *cli) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the browser UI and keep the cache in sync",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "browser UI on http://%s (ctrl+c to stop)\n", c.cfg.Server.HTTPAddress)
			return c.app.Serve(cmd.Context())
		},
	}
}

func (c *cli) tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage the stored API token",
	}

	set := &cobra.Command{
		Use:   "set <token>",
		Short: "Seal and store a personal access token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.SetToken(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "token saved")
			return nil
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove the stored token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.app.ClearToken(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "token removed")
			return nil
		},
	}

	cmd.AddCommand(set, clearCmd)
	return cmd
}

// versionCmd needs neither config nor cache.
func (c *cli) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "version",
		Short:             "Print build information",
		Args:              cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			renderBuildInfo(cmd.OutOrStdout(), c.buildInfo)
		},
	}
}
