package chart

import (
	"io"

	crerr "github.com/cockroachdb/errors"
	gochart "github.com/wcharczuk/go-chart/v2"
)

type Bar struct {
	Label string
	Value float64
}

// BarChart draws labelled bars with their value printed under each label.
// A nil YRange spans zero to 110% of the tallest bar.
type BarChart struct {
	Title  string
	YLabel string
	Bars   []Bar
	YRange *Range
	Width  int
	Height int
}

func (b BarChart) Kind() string { return KindBar }

func (b BarChart) Render(w io.Writer) error {
	if len(b.Bars) == 0 {
		return crerr.New("bar chart has no bars")
	}

	values := make([]gochart.Value, 0, len(b.Bars))
	peak := 0.0
	for i, bar := range b.Bars {
		color := seriesColor(i)
		values = append(values, gochart.Value{
			Label: labelValue(bar.Label, bar.Value),
			Value: bar.Value,
			Style: gochart.Style{FillColor: color, StrokeColor: color},
		})
		peak = max(peak, bar.Value)
	}

	width, height := size(b.Width, b.Height)
	ch := gochart.BarChart{
		Title:      b.Title,
		Width:      width,
		Height:     height,
		BarSpacing: 20,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20},
		},
		YAxis: gochart.YAxis{
			Name:  b.YLabel,
			Range: barRange(b.YRange, peak),
		},
		Bars: values,
	}
	return ch.Render(gochart.PNG, w)
}

// GroupSeries is one entity (a team) with a value per group.
type GroupSeries struct {
	Name   string
	Values []float64
}

// GroupedBarChart draws, for every group (a stat column), one bar per
// series side by side. Each series keeps its colour across groups and a
// legend maps colours to series names.
type GroupedBarChart struct {
	Title  string
	YLabel string
	Groups []string
	Series []GroupSeries
	Width  int
	Height int
}

func (g GroupedBarChart) Kind() string { return KindGroupedBar }

func (g GroupedBarChart) Render(w io.Writer) error {
	if len(g.Groups) == 0 || len(g.Series) == 0 {
		return crerr.New("grouped bar chart has no data")
	}
	for _, s := range g.Series {
		if len(s.Values) != len(g.Groups) {
			return crerr.Newf("series %q has %d values for %d groups", s.Name, len(s.Values), len(g.Groups))
		}
	}

	bars := make([]gochart.Value, 0, len(g.Groups)*len(g.Series))
	legendSeries := make([]gochart.Series, 0, len(g.Series))
	peak := 0.0
	for gi, group := range g.Groups {
		for si, s := range g.Series {
			color := seriesColor(si)
			v := s.Values[gi]
			bars = append(bars, gochart.Value{
				Label: labelValue(group, v),
				Value: v,
				Style: gochart.Style{FillColor: color, StrokeColor: color},
			})
			peak = max(peak, v)
		}
	}
	for si, s := range g.Series {
		legendSeries = append(legendSeries, gochart.ContinuousSeries{
			Name:  s.Name,
			Style: gochart.Style{StrokeColor: seriesColor(si), StrokeWidth: 6},
		})
	}
	legend := gochart.Chart{Series: legendSeries}

	width, height := size(g.Width, g.Height)
	ch := gochart.BarChart{
		Title:      g.Title,
		Width:      width,
		Height:     height,
		BarSpacing: 8,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20},
		},
		YAxis: gochart.YAxis{
			Name:  g.YLabel,
			Range: barRange(nil, peak),
		},
		Bars:     bars,
		Elements: []gochart.Renderable{gochart.Legend(&legend)},
	}
	return ch.Render(gochart.PNG, w)
}

func barRange(r *Range, peak float64) *gochart.ContinuousRange {
	if r != nil && r.Max > r.Min {
		return &gochart.ContinuousRange{Min: r.Min, Max: r.Max}
	}
	top := peak * 1.1
	if top <= 0 {
		top = 1
	}
	return &gochart.ContinuousRange{Min: 0, Max: top}
}
