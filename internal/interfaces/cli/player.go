package cli

import (
	"context"
	"text/tabwriter"

	"github.com/riskibarqy/hoopstats/internal/app"
	"github.com/riskibarqy/hoopstats/internal/domain/career"
	"github.com/riskibarqy/hoopstats/internal/domain/gamelog"
	"github.com/riskibarqy/hoopstats/internal/domain/player"
	"github.com/riskibarqy/hoopstats/internal/domain/stat"
	"github.com/riskibarqy/hoopstats/internal/usecase"
	"github.com/spf13/cobra"
)

func (c *CLI) playerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player biography, career and game log statistics",
	}
	cmd.AddCommand(
		c.playerInfoCommand(),
		c.playerCareerCommand(),
		c.playerGameLogCommand(),
		c.playerCompareCommand(),
	)
	return cmd
}

func (c *CLI) playerInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info PLAYER",
		Short: "Print a player's biographical information",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App, out *printer) error {
				info, err := a.Players.FetchPlayerInfo(ctx, joinArgs(args))
				if err != nil {
					return err
				}
				return out.result(info, func(tw *tabwriter.Writer) { infoTable(tw, info) })
			})
		},
	}
}

func infoTable(tw *tabwriter.Writer, info player.Info) {
	row(tw, "name", info.DisplayName)
	row(tw, "team", info.TeamCity+" "+info.TeamName, info.TeamAbbreviation)
	row(tw, "position", info.Position)
	row(tw, "jersey", info.Jersey)
	row(tw, "height", info.Height)
	row(tw, "weight", info.Weight)
	row(tw, "born", info.BirthDate)
	row(tw, "country", info.Country)
	row(tw, "school", info.School)
	row(tw, "experience", info.SeasonExperience)
	row(tw, "years", info.FromYear, info.ToYear)
	row(tw, "draft", info.DraftYear, info.DraftRound, info.DraftNumber)
}

type careerResult struct {
	Path    string          `json:"path,omitempty"`
	Seasons []career.Season `json:"seasons"`
}

func (c *CLI) playerCareerCommand() *cobra.Command {
	var perMode, column string
	cmd := &cobra.Command{
		Use:   "career PLAYER",
		Short: "Print career averages and plot one statistic across seasons",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App, out *printer) error {
				seasons, err := a.Players.FetchCareerStats(ctx, joinArgs(args), perMode)
				if err != nil {
					return err
				}
				res := careerResult{Seasons: seasons}
				if column != "" {
					if res.Path, err = a.Players.PlotCareerProgression(ctx, column); err != nil {
						return err
					}
				}
				return out.result(res, func(tw *tabwriter.Writer) {
					if res.Path != "" {
						row(tw, "chart", res.Path)
					}
					row(tw, "SEASON", "TEAM", "AGE", "GP", "PTS", "REB", "AST")
					for _, s := range seasons {
						row(tw, s.SeasonID, s.TeamAbbreviation, s.PlayerAge,
							s.Stats["GP"], s.Stats["PTS"], s.Stats["REB"], s.Stats["AST"])
					}
				})
			})
		},
	}
	cmd.Flags().StringVar(&perMode, "per-mode", career.PerModePerGame, "PerGame, Totals or Per36")
	cmd.Flags().StringVar(&column, "plot", "PTS", "statistic to plot across seasons; empty skips the chart")
	return cmd
}

type gameLogResult struct {
	Summary  []gamelog.SummaryItem `json:"summary"`
	Averages map[string]float64    `json:"averages"`
	Charts   []string              `json:"charts,omitempty"`
}

func (c *CLI) playerGameLogCommand() *cobra.Command {
	var (
		season, seasonType string
		stats              []string
		splits             bool
	)
	cmd := &cobra.Command{
		Use:   "gamelog PLAYER",
		Short: "Summarize a player's season and plot game-by-game performance",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App, out *printer) error {
				if _, err := a.Players.FetchGameLog(ctx, joinArgs(args), season, seasonType); err != nil {
					return err
				}
				summary, err := a.Players.StatsSummary()
				if err != nil {
					return err
				}
				averages, err := a.Players.SeasonAverages()
				if err != nil {
					return err
				}
				res := gameLogResult{Summary: summary, Averages: averages}

				path, err := a.Players.PlotSeasonPerformance(ctx, splitList(stats))
				if err != nil {
					return err
				}
				res.Charts = append(res.Charts, path)
				if splits {
					if path, err = a.Players.PlotShootingSplits(ctx); err != nil {
						return err
					}
					res.Charts = append(res.Charts, path)
				}

				return out.result(res, func(tw *tabwriter.Writer) {
					for _, item := range summary {
						row(tw, item.Statistic, item.Value)
					}
					for _, chart := range res.Charts {
						row(tw, "chart", chart)
					}
				})
			})
		},
	}
	seasonFlags(cmd, c.cfg, &season, &seasonType)
	cmd.Flags().StringSliceVar(&stats, "stats", usecase.DefaultPerformanceStats, "statistics to plot per game")
	cmd.Flags().BoolVar(&splits, "splits", false, "also plot FG%, 3P% and FT%")
	return cmd
}

func (c *CLI) playerCompareCommand() *cobra.Command {
	var season, seasonType string
	cmd := &cobra.Command{
		Use:   "compare PLAYER PLAYER...",
		Short: "Compare season averages of several players",
		Long:  "Compare season averages of several players. Quote names that contain spaces.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App, out *printer) error {
				rows, err := a.Players.ComparePlayers(ctx, args, season, seasonType)
				if err != nil {
					return err
				}
				return out.result(rows, func(tw *tabwriter.Writer) {
					columns := comparisonColumns(rows)
					header := []any{"PLAYER", "GP"}
					for _, col := range columns {
						header = append(header, col)
					}
					row(tw, header...)
					for _, r := range rows {
						cells := []any{r.Name, r.GamesPlayed}
						for _, col := range columns {
							cells = append(cells, r.Averages[col])
						}
						row(tw, cells...)
					}
				})
			})
		},
	}
	seasonFlags(cmd, c.cfg, &season, &seasonType)
	return cmd
}

// comparisonColumns lists the average columns present for any player, in
// gamelog.AverageColumns order, then any others sorted.
func comparisonColumns(rows []usecase.PlayerComparison) []string {
	seen := make(stat.Line)
	for _, r := range rows {
		for col, v := range r.Averages {
			seen[col] = v
		}
	}
	out := make([]string, 0, len(seen))
	for _, col := range gamelog.AverageColumns {
		if _, ok := seen[col]; ok {
			out = append(out, col)
			delete(seen, col)
		}
	}
	return append(out, seen.Columns()...)
}
