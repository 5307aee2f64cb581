// Package chart draws sample sets as PNG scatter plots.
package chart

import (
	"fmt"
	"io"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/stackframe/bentographer/internal/domain"
	"github.com/stackframe/bentographer/internal/domain/collection/field"
	"github.com/stackframe/bentographer/internal/domain/sample"
)

// Default canvas size in pixels.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

const (
	dateLayout = "2006-01-02"
	secondsDay = 24 * 60 * 60
)

// Config sizes the rendered image.
type Config struct {
	Width  int
	Height int
}

// Renderer turns a sample set into a PNG.
type Renderer struct {
	width  int
	height int
}

// NewRenderer creates a renderer. Non-positive sizes fall back to defaults.
func NewRenderer(cfg Config) *Renderer {
	r := &Renderer{width: cfg.Width, height: cfg.Height}
	if r.width <= 0 {
		r.width = DefaultWidth
	}
	if r.height <= 0 {
		r.height = DefaultHeight
	}
	return r
}

// Render writes a dot plot of set to w. The title is the Y field name and the
// Y axis always starts at zero.
func (r *Renderer) Render(w io.Writer, set *sample.Set, x, y field.Field) error {
	if set == nil || set.Len() == 0 {
		return domain.ErrNoSamples
	}
	xs, ys := set.Values()
	xLo, xHi, yLo, yHi := axisRanges(set, x.FieldType().IsTemporal())

	xAxis := gochart.XAxis{
		Name:  x.Name(),
		Range: &gochart.ContinuousRange{Min: xLo, Max: xHi},
	}
	if x.FieldType().IsTemporal() {
		xAxis.ValueFormatter = dateFormatter
	}

	graph := gochart.Chart{
		Title:  y.Name(),
		Width:  r.width,
		Height: r.height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40, Left: 16, Right: 24, Bottom: 16},
		},
		XAxis: xAxis,
		YAxis: gochart.YAxis{
			Name:  y.Name(),
			Range: &gochart.ContinuousRange{Min: yLo, Max: yHi},
		},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				Name:    y.Name(),
				XValues: xs,
				YValues: ys,
				Style:   dotStyle(gochart.ColorBlue),
			},
		},
	}

	if err := graph.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("render %s over %s: %w", y.Name(), x.Name(), err)
	}
	return nil
}

// dotStyle draws points only, no connecting line.
func dotStyle(col drawing.Color) gochart.Style {
	return gochart.Style{
		StrokeWidth: gochart.Disabled,
		DotWidth:    4,
		DotColor:    col,
	}
}

// axisRanges returns the plotted X and Y ranges. Y is pinned to [0, max(y)]
// whatever the sign of the data.
func axisRanges(set *sample.Set, temporal bool) (xLo, xHi, yLo, yHi float64) {
	minX, maxX, _, maxY, _ := set.Bounds()
	xLo, xHi = widen(minX, maxX, temporal)
	if maxY <= 0 {
		return xLo, xHi, 0, 1
	}
	return xLo, xHi, 0, maxY
}

// widen makes sure the range has a non-zero extent. Dates get a day either side.
func widen(lo, hi float64, temporal bool) (float64, float64) {
	if hi > lo {
		return lo, hi
	}
	pad := 1.0
	if temporal {
		pad = secondsDay
	}
	if lo == 0 {
		return 0, hi + pad
	}
	return lo - pad, hi + pad
}

func dateFormatter(v any) string {
	f, ok := v.(float64)
	if !ok {
		return fmt.Sprint(v)
	}
	return sample.ToTime(f).Format(dateLayout)
}
