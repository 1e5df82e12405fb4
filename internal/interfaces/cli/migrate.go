package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/riskibarqy/hoopstats/internal/infrastructure/migration"
	"github.com/riskibarqy/hoopstats/internal/usecase"
	"github.com/spf13/cobra"
)

func (c *CLI) migrateCommand() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the PostgreSQL schema of the game ID store",
	}
	cmd.PersistentFlags().StringVar(&dir, "dir", "", "migrations directory; the embedded migrations are used when empty")

	withRunner := func(fn func(cmd *cobra.Command, r *migration.Runner, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			r, err := migration.NewRunner(migration.Options{
				DBURL:  c.cfg.DBURL,
				Dir:    dir,
				Logger: c.logger,
			})
			if err != nil {
				return err
			}
			defer r.Close()
			return fn(cmd, r, args)
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: withRunner(func(_ *cobra.Command, r *migration.Runner, _ []string) error {
				return r.Up()
			}),
		},
		&cobra.Command{
			Use:   "down [STEPS]",
			Short: "Roll back migrations, one by default",
			Args:  cobra.MaximumNArgs(1),
			RunE: withRunner(func(_ *cobra.Command, r *migration.Runner, args []string) error {
				steps, err := parseSteps(args)
				if err != nil {
					return err
				}
				return r.Down(steps)
			}),
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the applied migration version",
			Args:  cobra.NoArgs,
			RunE: withRunner(func(cmd *cobra.Command, r *migration.Runner, _ []string) error {
				version, dirty, ok, err := r.Version()
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if !ok {
					fmt.Fprintln(out, "version: none")
					fmt.Fprintln(out, "dirty: false")
					return nil
				}
				fmt.Fprintf(out, "version: %d\n", version)
				fmt.Fprintf(out, "dirty: %t\n", dirty)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "force VERSION",
			Short: "Set the migration version without running migrations",
			Args:  cobra.ExactArgs(1),
			RunE: withRunner(func(_ *cobra.Command, r *migration.Runner, args []string) error {
				version, err := parseVersion(args[0])
				if err != nil {
					return err
				}
				return r.Force(version)
			}),
		},
		&cobra.Command{
			Use:   "goto VERSION",
			Short: "Migrate up or down to a version",
			Args:  cobra.ExactArgs(1),
			RunE: withRunner(func(_ *cobra.Command, r *migration.Runner, args []string) error {
				target, err := parseTarget(args[0])
				if err != nil {
					return err
				}
				return r.Goto(target)
			}),
		},
	)
	return cmd
}

func parseSteps(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	steps, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return 0, fmt.Errorf("%w: invalid down steps %q", usecase.ErrInvalidInput, args[0])
	}
	if steps <= 0 {
		return 0, fmt.Errorf("%w: down steps must be > 0", usecase.ErrInvalidInput)
	}
	return steps, nil
}

func parseVersion(raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: invalid version %q", usecase.ErrInvalidInput, raw)
	}
	if value < 0 {
		return 0, fmt.Errorf("%w: version must be >= 0", usecase.ErrInvalidInput)
	}
	return value, nil
}

func parseTarget(raw string) (uint, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid target version %q", usecase.ErrInvalidInput, raw)
	}
	return uint(value), nil
}
