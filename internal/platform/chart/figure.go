// Package chart renders statistics figures to PNG with go-chart.
package chart

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/hoopstats/internal/platform/logging"
	"github.com/riskibarqy/hoopstats/internal/platform/metrics"
	"github.com/valyala/bytebufferpool"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	KindShotChart  = "shot_chart"
	KindLine       = "line"
	KindBar        = "bar"
	KindGroupedBar = "grouped_bar"
)

const (
	defaultWidth  = 1200
	defaultHeight = 800
)

var (
	colorMade   = drawing.ColorGreen
	colorMissed = drawing.ColorRed
	colorCourt  = drawing.ColorBlack
)

// Figure is anything that can draw itself as a PNG.
type Figure interface {
	Kind() string
	Render(w io.Writer) error
}

// WriterConfig configures a Writer. An empty Dir writes to the working
// directory.
type WriterConfig struct {
	Dir     string
	Logger  *logging.Logger
	Metrics *metrics.Recorder
}

// Writer saves rendered figures as PNG files under Dir.
type Writer struct {
	dir     string
	logger  *logging.Logger
	metrics *metrics.Recorder
}

func NewWriter(cfg WriterConfig) *Writer {
	dir := strings.TrimSpace(cfg.Dir)
	if dir == "" {
		dir = "."
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	return &Writer{dir: dir, logger: logger, metrics: cfg.Metrics}
}

// Write renders fig and stores it as name (".png" appended when missing).
// The returned path is where the file landed.
func (w *Writer) Write(ctx context.Context, name string, fig Figure) (string, error) {
	if fig == nil {
		return "", crerr.New("figure is nil")
	}
	name = FileName(name)
	if name == "" {
		return "", crerr.New("figure name is required")
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := fig.Render(buf); err != nil {
		return "", crerr.Wrapf(err, "render %s", fig.Kind())
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", crerr.Wrap(err, "create chart dir")
	}
	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, buf.B, 0o644); err != nil {
		return "", crerr.Wrapf(err, "write %s", path)
	}

	w.metrics.ObserveChart(fig.Kind())
	w.logger.DebugContext(ctx, "chart written", "kind", fig.Kind(), "path", path, "bytes", buf.Len())
	return path, nil
}

// FileName turns a free-form label into a file name: spaces become
// underscores, path separators are dropped and ".png" is appended.
func FileName(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return ""
	}
	label = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t':
			return '_'
		case '/', '\\', ':':
			return -1
		}
		return r
	}, label)
	if !strings.HasSuffix(strings.ToLower(label), ".png") {
		label += ".png"
	}
	return label
}

func size(width, height int) (int, int) {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return width, height
}

// seriesColor cycles through the go-chart default palette.
func seriesColor(i int) drawing.Color {
	return gochart.GetDefaultColor(i)
}

func labelValue(label string, v float64) string {
	return fmt.Sprintf("%s\n%.1f", label, v)
}
