// Package cli exposes the hoopstats use cases as cobra commands.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/hoopstats/internal/app"
	"github.com/riskibarqy/hoopstats/internal/config"
	"github.com/riskibarqy/hoopstats/internal/platform/logging"
	"github.com/spf13/cobra"
)

// Builder creates the application a command runs against. It is called at
// most once per process and only by commands that need it.
type Builder func(ctx context.Context) (*app.App, error)

type CLI struct {
	cfg     config.Config
	logger  *logging.Logger
	build   Builder
	version string

	app    *app.App
	format string
}

func New(cfg config.Config, logger *logging.Logger, build Builder, version string) *CLI {
	if logger == nil {
		logger = logging.Default()
	}
	return &CLI{cfg: cfg, logger: logger, build: build, version: version}
}

// Command returns the root command with every subcommand attached.
func (c *CLI) Command() *cobra.Command {
	root := &cobra.Command{
		Use:           "hoopstats",
		Short:         "NBA statistics and charts from stats.nba.com",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch c.format {
			case formatTable, formatJSON:
				return nil
			default:
				return fmt.Errorf("unknown output format %q: valid values are %s, %s", c.format, formatTable, formatJSON)
			}
		},
	}
	root.PersistentFlags().StringVarP(&c.format, "output", "o", formatTable, "output format: table or json")

	root.AddCommand(
		c.shotChartCommand(),
		c.playerCommand(),
		c.teamCommand(),
		c.gamesCommand(),
		c.migrateCommand(),
		c.versionCommand(),
	)
	return root
}

// Close releases the application if a command built one.
func (c *CLI) Close() error {
	if c.app == nil {
		return nil
	}
	return c.app.Close()
}

// run builds the application on first use and executes fn under a root
// span named after the command path.
func (c *CLI) run(cmd *cobra.Command, fn func(ctx context.Context, a *app.App, out *printer) error) error {
	ctx, span := startCommandSpan(cmd.Context(), cmd.CommandPath())
	if c.app == nil {
		a, err := c.build(ctx)
		if err != nil {
			endSpan(span, err)
			return fmt.Errorf("build app: %w", err)
		}
		c.app = a
	}

	err := fn(ctx, c.app, newPrinter(cmd.OutOrStdout(), c.format))
	endSpan(span, err)
	return err
}

func seasonFlags(cmd *cobra.Command, cfg config.Config, season, seasonType *string) {
	cmd.Flags().StringVar(season, "season", cfg.DefaultSeason, "season in YYYY-YY form")
	cmd.Flags().StringVar(seasonType, "season-type", cfg.DefaultSeasonType, "Regular Season, Playoffs, Pre Season, All Star or PlayIn")
}

func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, item := range strings.Split(v, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}

func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
