package cli

import (
	"context"
	"text/tabwriter"

	"github.com/riskibarqy/hoopstats/internal/app"
	"github.com/riskibarqy/hoopstats/internal/domain/gamelog"
	"github.com/riskibarqy/hoopstats/internal/domain/standings"
	"github.com/riskibarqy/hoopstats/internal/usecase"
	"github.com/spf13/cobra"
)

func (c *CLI) teamCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "League standings, team game logs and team comparisons",
	}
	cmd.AddCommand(
		c.teamListCommand(),
		c.teamStandingsCommand(),
		c.teamGameLogCommand(),
		c.teamCompareCommand(),
	)
	return cmd
}

func (c *CLI) teamListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every franchise with its ID and abbreviation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App, out *printer) error {
				teams, err := a.Directory.ListTeams(ctx)
				if err != nil {
					return err
				}
				return out.result(teams, func(tw *tabwriter.Writer) {
					row(tw, "ID", "ABBR", "TEAM", "CITY", "FOUNDED")
					for _, t := range teams {
						row(tw, t.ID, t.Abbreviation, t.FullName, t.City, t.YearFounded)
					}
				})
			})
		},
	}
}

type leadersResult struct {
	Stat    string               `json:"stat"`
	Path    string               `json:"path"`
	Leaders []standings.TeamLine `json:"leaders"`
}

func (c *CLI) teamStandingsCommand() *cobra.Command {
	var (
		season, seasonType, column string
		topN                       int
	)
	cmd := &cobra.Command{
		Use:   "standings",
		Short: "Rank teams by a per-game statistic and plot the leaders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App, out *printer) error {
				if _, err := a.Teams.FetchLeagueStandings(ctx, season, seasonType); err != nil {
					return err
				}
				leaders, err := a.Teams.LeagueLeaders(ctx, column, topN)
				if err != nil {
					return err
				}
				path, err := a.Teams.PlotLeagueLeaders(ctx, column, topN)
				if err != nil {
					return err
				}
				res := leadersResult{Stat: column, Path: path, Leaders: leaders}
				return out.result(res, func(tw *tabwriter.Writer) {
					row(tw, "chart", path)
					row(tw, "RANK", "TEAM", column)
					for i, l := range leaders {
						v, _ := l.Stats.Get(column)
						row(tw, i+1, l.TeamName, v)
					}
				})
			})
		},
	}
	seasonFlags(cmd, c.cfg, &season, &seasonType)
	cmd.Flags().StringVar(&column, "stat", "PTS", "statistic to rank by")
	cmd.Flags().IntVar(&topN, "top", 10, "number of teams to show")
	return cmd
}

type teamGameLogResult struct {
	Summary gamelog.TeamSummary `json:"summary"`
	Charts  []string            `json:"charts"`
}

func (c *CLI) teamGameLogCommand() *cobra.Command {
	var (
		season, seasonType string
		stats              []string
	)
	cmd := &cobra.Command{
		Use:   "gamelog TEAM",
		Short: "Summarize a team's season and plot its record and performance",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App, out *printer) error {
				if _, err := a.Teams.FetchTeamGameLog(ctx, joinArgs(args), season, seasonType); err != nil {
					return err
				}
				summary, err := a.Teams.TeamSummary()
				if err != nil {
					return err
				}
				record, err := a.Teams.PlotWinLossRecord(ctx)
				if err != nil {
					return err
				}
				perf, err := a.Teams.PlotTeamPerformance(ctx, splitList(stats))
				if err != nil {
					return err
				}
				res := teamGameLogResult{Summary: summary, Charts: []string{record, perf}}
				return out.result(res, func(tw *tabwriter.Writer) {
					row(tw, "games", summary.GamesPlayed)
					row(tw, "record", summary.Wins, summary.Losses)
					row(tw, "win %", summary.WinPercentage)
					row(tw, "PPG", summary.PPG)
					row(tw, "opp PPG", summary.OppPPG)
					row(tw, "FG%", summary.FGPct)
					row(tw, "3P%", summary.FG3Pct)
					row(tw, "FT%", summary.FTPct)
					row(tw, "RPG", summary.RebPG)
					row(tw, "APG", summary.AstPG)
					for _, chart := range res.Charts {
						row(tw, "chart", chart)
					}
				})
			})
		},
	}
	seasonFlags(cmd, c.cfg, &season, &seasonType)
	cmd.Flags().StringSliceVar(&stats, "stats", []string{"PTS", "FG_PCT"}, "statistics to plot per game")
	return cmd
}

type compareTeamsResult struct {
	Path string `json:"path"`
}

func (c *CLI) teamCompareCommand() *cobra.Command {
	var (
		season, seasonType string
		stats              []string
	)
	cmd := &cobra.Command{
		Use:   "compare TEAM TEAM...",
		Short: "Plot per-game statistics of several teams side by side",
		Long:  "Plot per-game statistics of several teams side by side. Teams are matched by full name, abbreviation or nickname, e.g. \"Boston Celtics\", \"BOS\" or \"Celtics\".",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App, out *printer) error {
				if _, err := a.Teams.FetchLeagueStandings(ctx, season, seasonType); err != nil {
					return err
				}
				path, err := a.Teams.CompareTeams(ctx, args, splitList(stats))
				if err != nil {
					return err
				}
				return out.result(compareTeamsResult{Path: path}, func(tw *tabwriter.Writer) {
					row(tw, "chart", path)
				})
			})
		},
	}
	seasonFlags(cmd, c.cfg, &season, &seasonType)
	cmd.Flags().StringSliceVar(&stats, "stats", usecase.DefaultCompareStats, "statistics to compare")
	return cmd
}
