package chart

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/riskibarqy/hoopstats/internal/platform/metrics"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func renderBytes(t *testing.T, fig Figure) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := fig.Render(&buf); err != nil {
		t.Fatalf("render %s: %v", fig.Kind(), err)
	}
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Fatalf("render %s: output is not a png", fig.Kind())
	}
	return buf.Bytes()
}

func sampleShotChart() ShotChart {
	return ShotChart{
		Title: "Test Shot Chart",
		Outline: []Polyline{
			{X: []float64{-250, 250, 250, -250, -250}, Y: []float64{-47.5, -47.5, 422.5, 422.5, -47.5}},
			{X: []float64{-60, 60}, Y: []float64{142.5, 142.5}, Dashed: true},
		},
		MadeX:   []float64{0, 10, -220},
		MadeY:   []float64{5, 100, 20},
		MissedX: []float64{150},
		MissedY: []float64{200},
		XRange:  Range{Min: -250, Max: 250},
		YRange:  Range{Min: -47.5, Max: 422.5},
		Width:   500,
		Height:  470,
	}
}

func TestShotChart_Render(t *testing.T) {
	t.Parallel()

	renderBytes(t, sampleShotChart())
}

func TestShotChart_RenderWithoutMisses(t *testing.T) {
	t.Parallel()

	fig := sampleShotChart()
	fig.MissedX, fig.MissedY = nil, nil
	renderBytes(t, fig)
}

func TestShotChart_RejectsMisalignedCoordinates(t *testing.T) {
	t.Parallel()

	fig := sampleShotChart()
	fig.MadeY = fig.MadeY[:1]
	if err := fig.Render(&bytes.Buffer{}); err == nil {
		t.Fatalf("expected error for misaligned coordinates")
	}
}

func TestLineChart_Render(t *testing.T) {
	t.Parallel()

	renderBytes(t, LineChart{
		Title:  "PTS Over Season",
		XLabel: "Game",
		Series: []LineSeries{
			{Name: "PTS", Values: []float64{20, 31, 25, 18}},
			{Name: "AST", Values: []float64{7, 9, 11, 5}},
		},
		Width:  600,
		Height: 400,
	})
}

func TestLineChart_RenderSinglePoint(t *testing.T) {
	t.Parallel()

	renderBytes(t, LineChart{
		Title:  "Career PTS",
		Labels: []string{"2003-04"},
		Series: []LineSeries{{Name: "PTS", Values: []float64{20.9}}},
	})
}

func TestLineChart_RejectsEmpty(t *testing.T) {
	t.Parallel()

	if err := (LineChart{Series: []LineSeries{{Name: "PTS"}}}).Render(&bytes.Buffer{}); err == nil {
		t.Fatalf("expected error for empty line chart")
	}
}

func TestBarChart_Render(t *testing.T) {
	t.Parallel()

	renderBytes(t, BarChart{
		Title:  "Shooting Splits",
		Bars:   []Bar{{Label: "FG%", Value: 54.1}, {Label: "3P%", Value: 41}, {Label: "FT%", Value: 0}},
		YRange: &Range{Min: 0, Max: 100},
	})
}

func TestBarChart_RenderAllZero(t *testing.T) {
	t.Parallel()

	renderBytes(t, BarChart{Bars: []Bar{{Label: "A", Value: 0}}})
}

func TestGroupedBarChart_Render(t *testing.T) {
	t.Parallel()

	renderBytes(t, GroupedBarChart{
		Title:  "Team Comparison",
		Groups: []string{"PTS", "REB"},
		Series: []GroupSeries{
			{Name: "Boston Celtics", Values: []float64{120.6, 46.3}},
			{Name: "Denver Nuggets", Values: []float64{114.9, 44.9}},
		},
	})
}

func TestGroupedBarChart_RejectsRaggedSeries(t *testing.T) {
	t.Parallel()

	fig := GroupedBarChart{
		Groups: []string{"PTS", "REB"},
		Series: []GroupSeries{{Name: "Boston Celtics", Values: []float64{120.6}}},
	}
	if err := fig.Render(&bytes.Buffer{}); err == nil {
		t.Fatalf("expected error for ragged series")
	}
}

func TestWriter_WritesFileAndCountsChart(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "charts")
	rec := metrics.NewRecorder()
	w := NewWriter(WriterConfig{Dir: dir, Metrics: rec})

	path, err := w.Write(context.Background(), "LeBron James shot chart", sampleShotChart())
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if want := filepath.Join(dir, "LeBron_James_shot_chart.png"); path != want {
		t.Fatalf("unexpected path: got %q want %q", path, want)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Fatalf("written file is not a png")
	}
	count, err := testutil.GatherAndCount(rec.Gatherer(), "hoopstats_chart_rendered_total")
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one chart series, got %d", count)
	}
}

func TestWriter_RenderFailureWritesNothing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w := NewWriter(WriterConfig{Dir: dir})
	if _, err := w.Write(context.Background(), "empty", BarChart{}); err == nil {
		t.Fatalf("expected render error")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no files, got %d", len(entries))
	}
}

func TestFileName(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"":                      "",
		"shot chart":            "shot_chart.png",
		"a/b:c":                 "abc.png",
		"already.PNG":           "already.PNG",
		"  Boston Celtics PTS ": "Boston_Celtics_PTS.png",
	}
	for in, want := range cases {
		if got := FileName(in); got != want {
			t.Fatalf("FileName(%q): got %q want %q", in, got, want)
		}
	}
}

func TestXTicks_KeepsEndpoints(t *testing.T) {
	t.Parallel()

	ticks := xTicks(nil, 82)
	if len(ticks) == 0 || ticks[0].Value != 1 {
		t.Fatalf("first tick should be at 1: %+v", ticks)
	}
	if last := ticks[len(ticks)-1]; last.Value != 82 || last.Label != "82" {
		t.Fatalf("last tick should be 82: %+v", last)
	}
	if len(ticks) > maxXTicks+1 {
		t.Fatalf("too many ticks: %d", len(ticks))
	}
}
