package cli

import (
	"context"
	"text/tabwriter"

	"github.com/riskibarqy/hoopstats/internal/app"
	"github.com/riskibarqy/hoopstats/internal/domain/shot"
	"github.com/riskibarqy/hoopstats/internal/usecase"
	"github.com/spf13/cobra"
)

type shotChartResult struct {
	Path    string          `json:"path"`
	Summary shot.Summary    `json:"summary"`
	Zones   []shot.ZoneLine `json:"zones,omitempty"`
}

func (c *CLI) shotChartCommand() *cobra.Command {
	var (
		req   usecase.ShotChartRequest
		zones bool
	)
	cmd := &cobra.Command{
		Use:   "shotchart PLAYER",
		Short: "Plot a player's made and missed shots over the half court",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Player = joinArgs(args)
			return c.run(cmd, func(ctx context.Context, a *app.App, out *printer) error {
				path, err := a.ShotCharts.PlotShotChart(ctx, req)
				if err != nil {
					return err
				}
				summary, err := a.ShotCharts.Statistics()
				if err != nil {
					return err
				}
				res := shotChartResult{Path: path, Summary: summary}
				if zones {
					if res.Zones, err = a.ShotCharts.ZoneBreakdown(); err != nil {
						return err
					}
				}
				return out.result(res, func(tw *tabwriter.Writer) {
					row(tw, "chart", path)
					row(tw, "total shots", summary.TotalShots)
					row(tw, "made", summary.Made)
					row(tw, "missed", summary.Missed)
					row(tw, "FG%", summary.FGPct)
					if s := summary.TwoPoint; s != nil {
						row(tw, "2PT", s.Made, s.Attempts, s.Pct)
					}
					if s := summary.ThreePoint; s != nil {
						row(tw, "3PT", s.Made, s.Attempts, s.Pct)
					}
					if len(res.Zones) > 0 {
						row(tw)
						row(tw, "ZONE", "MADE", "ATTEMPTS", "PCT")
						for _, z := range res.Zones {
							row(tw, z.Zone, z.Made, z.Attempts, z.Pct)
						}
					}
				})
			})
		},
	}
	seasonFlags(cmd, c.cfg, &req.Season, &req.SeasonType)
	cmd.Flags().StringVar(&req.Title, "title", "", "chart title")
	cmd.Flags().StringVar(&req.FileName, "file", "", "output file name inside the chart directory")
	cmd.Flags().BoolVar(&zones, "zones", false, "also print the per-zone breakdown")
	return cmd
}
