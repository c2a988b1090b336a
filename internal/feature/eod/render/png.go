// Package render draws the end-of-day chart as a PNG image.
package render

import (
	"errors"
	"fmt"
	"io"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"stockchart/internal/feature/eod/domain/entity"
)

// ErrNotEnoughPoints is returned when the series cannot span an axis.
var ErrNotEnoughPoints = errors.New("render: at least two points are required")

const (
	DefaultWidth  = 1024
	DefaultHeight = 512
)

var (
	closeColor  = drawing.ColorFromHex("2f7ed8")
	rangeColor  = drawing.ColorFromHex("9aa5b1")
	volumeColor = drawing.ColorFromHex("8bbc21")
)

// Options controls the image produced by PNG.
type Options struct {
	Title  string
	Width  int
	Height int
}

// PNG renders close, high and low prices on the primary axis and volume on
// the secondary axis, writing the encoded image to w.
func PNG(w io.Writer, s entity.ChartSeries, opts Options) error {
	n := s.Len()
	if n < 2 || len(s.Volume) != n {
		return ErrNotEnoughPoints
	}
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}

	xs := make([]time.Time, n)
	closes := make([]float64, n)
	highs := make([]float64, n)
	lows := make([]float64, n)
	vols := make([]float64, n)
	for i, p := range s.OHLC {
		xs[i] = p.Date
		closes[i] = p.Close
		highs[i] = p.High
		lows[i] = p.Low
		vols[i] = float64(s.Volume[i].Volume)
	}

	rangeStyle := chart.Style{StrokeColor: rangeColor, StrokeWidth: 1, StrokeDashArray: []float64{4, 2}}

	ch := chart.Chart{
		Title:      opts.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{ValueFormatter: chart.TimeDateValueFormatter},
		YAxis:      chart.YAxis{Name: "OHLC"},
		YAxisSecondary: chart.YAxis{
			Name:           "Volume",
			ValueFormatter: volumeFormatter,
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Volume",
				YAxis:   chart.YAxisSecondary,
				XValues: xs,
				YValues: vols,
				Style:   chart.Style{StrokeColor: volumeColor, FillColor: volumeColor.WithAlpha(64)},
			},
			chart.TimeSeries{Name: "High", XValues: xs, YValues: highs, Style: rangeStyle},
			chart.TimeSeries{Name: "Low", XValues: xs, YValues: lows, Style: rangeStyle},
			chart.TimeSeries{
				Name:    "Close",
				XValues: xs,
				YValues: closes,
				Style:   chart.Style{StrokeColor: closeColor, StrokeWidth: 2},
			},
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

func volumeFormatter(v interface{}) string {
	f, ok := v.(float64)
	if !ok {
		return ""
	}
	switch {
	case f >= 1e9:
		return fmt.Sprintf("%.1fB", f/1e9)
	case f >= 1e6:
		return fmt.Sprintf("%.1fM", f/1e6)
	case f >= 1e3:
		return fmt.Sprintf("%.1fK", f/1e3)
	}
	return fmt.Sprintf("%.0f", f)
}
