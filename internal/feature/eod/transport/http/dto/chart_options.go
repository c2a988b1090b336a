// Package dto defines the response shapes of the eod chart endpoints.
package dto

import "stockchart/internal/feature/eod/domain/entity"

// ChartOptions is the Highstock configuration for the stock chart page.
type ChartOptions struct {
	RangeSelector RangeSelector `json:"rangeSelector"`
	Title         Title         `json:"title"`
	YAxis         []Axis        `json:"yAxis"`
	Tooltip       Tooltip       `json:"tooltip"`
	Series        []Series      `json:"series"`
}

// RangeSelector is the zoom button bar; Selected indexes Buttons.
type RangeSelector struct {
	Buttons  []RangeButton `json:"buttons"`
	Selected int           `json:"selected"`
}

// RangeButton zooms to Count units of Type.
type RangeButton struct {
	Type  string `json:"type"`
	Count int    `json:"count,omitempty"`
	Text  string `json:"text"`
}

// Title is a chart or axis title.
type Title struct {
	Text string `json:"text"`
}

// Axis is one y-axis pane. Top and Height are percentages of the plot area.
type Axis struct {
	Labels    AxisLabels  `json:"labels"`
	Title     Title       `json:"title"`
	Top       string      `json:"top,omitempty"`
	Height    string      `json:"height"`
	Offset    *int        `json:"offset,omitempty"`
	LineWidth int         `json:"lineWidth"`
	Resize    *AxisResize `json:"resize,omitempty"`
}

// AxisLabels positions the tick labels of an Axis.
type AxisLabels struct {
	Align string `json:"align"`
	X     int    `json:"x"`
}

// AxisResize lets the user drag the border between panes.
type AxisResize struct {
	Enabled bool `json:"enabled"`
}

// Tooltip is the chart-wide tooltip setting.
type Tooltip struct {
	Split bool `json:"split"`
}

// SeriesTooltip overrides tooltip formatting for one series.
type SeriesTooltip struct {
	ValueDecimals int `json:"valueDecimals"`
}

// Series is one chart series. Data holds [label, open, high, low, close]
// tuples for candlesticks and [label, volume] pairs for columns.
type Series struct {
	Type    string         `json:"type"`
	Name    string         `json:"name"`
	Data    [][]any        `json:"data"`
	YAxis   int            `json:"yAxis,omitempty"`
	Tooltip *SeriesTooltip `json:"tooltip,omitempty"`
}

// NewChartOptions builds the chart configuration for symbol from s.
func NewChartOptions(symbol string, s entity.ChartSeries) ChartOptions {
	ohlc := make([][]any, 0, len(s.OHLC))
	for _, p := range s.OHLC {
		ohlc = append(ohlc, []any{p.Label, p.Open, p.High, p.Low, p.Close})
	}
	volume := make([][]any, 0, len(s.Volume))
	for _, p := range s.Volume {
		volume = append(volume, []any{p.Label, p.Volume})
	}

	zero := 0
	return ChartOptions{
		RangeSelector: RangeSelector{
			Buttons: []RangeButton{
				{Type: "day", Count: 3, Text: "3d"},
				{Type: "week", Count: 1, Text: "1w"},
				{Type: "month", Count: 1, Text: "1m"},
				{Type: "month", Count: 6, Text: "6m"},
				{Type: "year", Count: 1, Text: "1y"},
				{Type: "all", Text: "All"},
			},
			Selected: 3,
		},
		Title: Title{Text: symbol + " Historical"},
		YAxis: []Axis{
			{
				Labels:    AxisLabels{Align: "right", X: -3},
				Title:     Title{Text: "OHLC"},
				Height:    "60%",
				LineWidth: 2,
				Resize:    &AxisResize{Enabled: true},
			},
			{
				Labels:    AxisLabels{Align: "right", X: -3},
				Title:     Title{Text: "Volume"},
				Top:       "65%",
				Height:    "35%",
				Offset:    &zero,
				LineWidth: 2,
			},
		},
		Tooltip: Tooltip{Split: true},
		Series: []Series{
			{Type: "candlestick", Name: symbol, Data: ohlc, Tooltip: &SeriesTooltip{ValueDecimals: 2}},
			{Type: "column", Name: "Volume", Data: volume, YAxis: 1},
		},
	}
}
