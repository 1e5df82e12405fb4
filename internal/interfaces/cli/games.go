package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/riskibarqy/hoopstats/internal/app"
	"github.com/riskibarqy/hoopstats/internal/domain/game"
	"github.com/riskibarqy/hoopstats/internal/usecase"
	"github.com/spf13/cobra"
)

func (c *CLI) gamesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "games",
		Short: "Find games by date, save yesterday's game IDs and fetch box scores",
	}
	cmd.AddCommand(
		c.gamesYesterdayCommand(),
		c.gamesFindCommand(),
		c.gamesListCommand(),
		c.gamesBoxScoresCommand(),
	)
	return cmd
}

type slateResult struct {
	Date    string   `json:"date"`
	GameIDs []string `json:"game_ids"`
}

func newSlateResult(slate game.Slate) slateResult {
	ids := slate.GameIDs
	if ids == nil {
		ids = []string{}
	}
	return slateResult{Date: slate.Date.Format(time.DateOnly), GameIDs: ids}
}

func (c *CLI) gamesYesterdayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "yesterday",
		Short: "Find yesterday's regular-season games and save their IDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App, out *printer) error {
				slate, err := a.Games.WriteYesterdaysGames(ctx)
				if err != nil {
					return err
				}
				return out.result(newSlateResult(slate), func(tw *tabwriter.Writer) {
					if slate.Empty() {
						row(tw, "no games found for", slate.Date.Format(time.DateOnly))
						return
					}
					row(tw, "saved", len(slate.GameIDs), "game ids for", slate.Date.Format(time.DateOnly))
				})
			})
		},
	}
}

func (c *CLI) gamesFindCommand() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "find",
		Short: "List the regular-season games played on a date without saving them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			day, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(date), time.Local)
			if err != nil {
				return fmt.Errorf("%w: date must be YYYY-MM-DD", usecase.ErrInvalidInput)
			}
			return c.run(cmd, func(ctx context.Context, a *app.App, out *printer) error {
				slate, err := a.Games.FindGames(ctx, day)
				if err != nil {
					return err
				}
				return out.result(newSlateResult(slate), func(tw *tabwriter.Writer) {
					for _, id := range slate.GameIDs {
						row(tw, id)
					}
				})
			})
		},
	}
	cmd.Flags().StringVar(&date, "date", time.Now().AddDate(0, 0, -1).Format(time.DateOnly), "game date as YYYY-MM-DD")
	return cmd
}

func (c *CLI) gamesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the saved game IDs, one per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App, out *printer) error {
				ids, err := a.Games.ReadGameIDs(ctx)
				if err != nil {
					return err
				}
				return out.result(ids, func(tw *tabwriter.Writer) {
					for _, id := range ids {
						row(tw, id)
					}
				})
			})
		},
	}
}

type boxScoreFailure struct {
	GameID string `json:"game_id"`
	Error  string `json:"error"`
}

type boxScoreRow struct {
	game.BoxScore
	Matchup string `json:"matchup,omitempty"`
}

type boxScoresResult struct {
	Scores   []boxScoreRow     `json:"scores"`
	Failures []boxScoreFailure `json:"failures,omitempty"`
}

func (c *CLI) gamesBoxScoresCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "boxscores [GAME_ID...]",
		Short: "Fetch box score summaries for the given or saved game IDs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App, out *printer) error {
				ids := splitList(args)
				if len(ids) == 0 {
					saved, err := a.Games.ReadGameIDs(ctx)
					if err != nil {
						return err
					}
					ids = saved
				}
				batch, err := a.Games.FetchBoxScores(ctx, ids)
				if err != nil {
					return err
				}

				res := boxScoresResult{Scores: make([]boxScoreRow, 0, len(batch.Scores))}
				for _, s := range batch.Scores {
					matchup, err := a.Directory.Matchup(ctx, s)
					if err != nil {
						return err
					}
					res.Scores = append(res.Scores, boxScoreRow{BoxScore: s, Matchup: matchup})
				}
				for _, f := range batch.Failures {
					res.Failures = append(res.Failures, boxScoreFailure{GameID: f.GameID, Error: f.Err.Error()})
				}
				return out.result(res, func(tw *tabwriter.Writer) {
					row(tw, "GAME", "DATE", "MATCHUP", "STATUS", "SCORE")
					for _, s := range res.Scores {
						row(tw, s.GameID, s.GameDate, s.Matchup, s.Status, scoreLine(s.BoxScore))
					}
					for _, f := range res.Failures {
						row(tw, f.GameID, "", "", "failed", f.Error)
					}
				})
			})
		},
	}
}

func scoreLine(s game.BoxScore) string {
	parts := make([]string, 0, len(s.LineScores))
	for _, l := range s.LineScores {
		parts = append(parts, fmt.Sprintf("%s %d", l.TeamAbbreviation, l.Points))
	}
	return strings.Join(parts, " - ")
}
