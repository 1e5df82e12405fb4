package chart

import (
	"io"

	crerr "github.com/cockroachdb/errors"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Polyline is one court marking.
type Polyline struct {
	X      []float64
	Y      []float64
	Dashed bool
}

// Range is a closed axis interval.
type Range struct {
	Min float64
	Max float64
}

// ShotChart scatters made and missed shots over court markings. Coordinates
// share one space; the axes are fixed to XRange and YRange.
type ShotChart struct {
	Title   string
	Outline []Polyline
	MadeX   []float64
	MadeY   []float64
	MissedX []float64
	MissedY []float64
	XRange  Range
	YRange  Range
	Width   int
	Height  int
}

func (s ShotChart) Kind() string { return KindShotChart }

func (s ShotChart) Render(w io.Writer) error {
	if len(s.MadeX) != len(s.MadeY) || len(s.MissedX) != len(s.MissedY) {
		return crerr.New("shot coordinates are misaligned")
	}
	if s.XRange.Max <= s.XRange.Min || s.YRange.Max <= s.YRange.Min {
		return crerr.New("shot chart range is empty")
	}

	series := make([]gochart.Series, 0, len(s.Outline)+2)
	for _, p := range s.Outline {
		if len(p.X) == 0 || len(p.X) != len(p.Y) {
			continue
		}
		style := gochart.Style{StrokeColor: colorCourt, StrokeWidth: 1.5}
		if p.Dashed {
			style.StrokeDashArray = []float64{5, 5}
		}
		series = append(series, gochart.ContinuousSeries{XValues: p.X, YValues: p.Y, Style: style})
	}
	if len(s.MadeX) > 0 {
		series = append(series, shotSeries("Made", s.MadeX, s.MadeY, colorMade))
	}
	if len(s.MissedX) > 0 {
		series = append(series, shotSeries("Missed", s.MissedX, s.MissedY, colorMissed))
	}
	if len(series) == 0 {
		return crerr.New("shot chart has nothing to draw")
	}

	// Legend reads the stroke of each series, so it gets its own chart with
	// visible strokes and only the two shot outcomes.
	legend := gochart.Chart{Series: []gochart.Series{
		gochart.ContinuousSeries{Name: "Made", Style: gochart.Style{StrokeColor: colorMade, StrokeWidth: 3}},
		gochart.ContinuousSeries{Name: "Missed", Style: gochart.Style{StrokeColor: colorMissed, StrokeWidth: 3}},
	}}

	width, height := size(s.Width, s.Height)
	ch := gochart.Chart{
		Title:  s.Title,
		Width:  width,
		Height: height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: gochart.XAxis{
			Style: gochart.Hidden(),
			Range: &gochart.ContinuousRange{Min: s.XRange.Min, Max: s.XRange.Max},
		},
		YAxis: gochart.YAxis{
			Style: gochart.Hidden(),
			Range: &gochart.ContinuousRange{Min: s.YRange.Min, Max: s.YRange.Max},
		},
		Series: series,
	}
	ch.Elements = []gochart.Renderable{gochart.Legend(&legend)}
	return ch.Render(gochart.PNG, w)
}

func shotSeries(name string, x, y []float64, color drawing.Color) gochart.ContinuousSeries {
	return gochart.ContinuousSeries{
		Name:    name,
		XValues: x,
		YValues: y,
		Style: gochart.Style{
			StrokeWidth: gochart.Disabled,
			DotWidth:    4,
			DotColor:    color.WithAlpha(180),
		},
	}
}
