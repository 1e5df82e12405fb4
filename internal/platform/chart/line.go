package chart

import (
	"io"
	"math"
	"strconv"

	crerr "github.com/cockroachdb/errors"
	gochart "github.com/wcharczuk/go-chart/v2"
)

// maxXTicks caps how many category labels are printed on the x axis.
const maxXTicks = 20

// LineSeries is one named line. Values are plotted at x = 1..len(Values).
type LineSeries struct {
	Name   string
	Values []float64
}

// LineChart draws one or more lines over a shared ordinal x axis. When
// Labels is set it names each x position (season ids, dates); otherwise the
// positions are numbered from 1.
type LineChart struct {
	Title  string
	XLabel string
	YLabel string
	Labels []string
	Series []LineSeries
	Width  int
	Height int
}

func (l LineChart) Kind() string { return KindLine }

func (l LineChart) Render(w io.Writer) error {
	n := 0
	for _, s := range l.Series {
		n = max(n, len(s.Values))
	}
	if n == 0 {
		return crerr.New("line chart has no values")
	}

	series := make([]gochart.Series, 0, len(l.Series))
	lo, hi := math.Inf(1), math.Inf(-1)
	for i, s := range l.Series {
		if len(s.Values) == 0 {
			continue
		}
		xs := make([]float64, len(s.Values))
		for j, v := range s.Values {
			xs[j] = float64(j + 1)
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
		color := seriesColor(i)
		series = append(series, gochart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: s.Values,
			Style: gochart.Style{
				StrokeColor: color,
				StrokeWidth: 2,
				DotColor:    color,
				DotWidth:    3,
			},
		})
	}

	width, height := size(l.Width, l.Height)
	ch := gochart.Chart{
		Title:  l.Title,
		Width:  width,
		Height: height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: gochart.XAxis{
			Name:           l.XLabel,
			GridMajorStyle: gridStyle(),
		},
		YAxis: gochart.YAxis{
			Name:           l.YLabel,
			Range:          paddedRange(lo, hi),
			GridMajorStyle: gridStyle(),
		},
		Series: series,
	}
	if n == 1 {
		ch.XAxis.Range = &gochart.ContinuousRange{Min: 0, Max: 2}
		ch.XAxis.Ticks = []gochart.Tick{{Value: 0}, {Value: 1, Label: xLabel(l.Labels, 0)}, {Value: 2}}
	} else {
		ch.XAxis.Ticks = xTicks(l.Labels, n)
	}
	if len(series) > 1 {
		ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}
	}
	return ch.Render(gochart.PNG, w)
}

// xTicks spaces at most maxXTicks labels evenly, always keeping the first
// and last position so the axis spans every point.
func xTicks(labels []string, n int) []gochart.Tick {
	step := int(math.Ceil(float64(n) / maxXTicks))
	step = max(step, 1)
	ticks := make([]gochart.Tick, 0, n/step+2)
	for i := 0; i < n; i += step {
		ticks = append(ticks, gochart.Tick{Value: float64(i + 1), Label: xLabel(labels, i)})
	}
	if (n-1)%step != 0 {
		ticks = append(ticks, gochart.Tick{Value: float64(n), Label: xLabel(labels, n-1)})
	}
	return ticks
}

func xLabel(labels []string, i int) string {
	if i < len(labels) {
		return labels[i]
	}
	return strconv.Itoa(i + 1)
}

// paddedRange adds a tenth of the spread above and below, or one unit each
// way for a flat line.
func paddedRange(lo, hi float64) *gochart.ContinuousRange {
	pad := (hi - lo) / 10
	if pad == 0 {
		pad = 1
	}
	return &gochart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}

func gridStyle() gochart.Style {
	return gochart.Style{
		StrokeColor: gochart.ColorLightGray,
		StrokeWidth: 0.5,
	}
}
