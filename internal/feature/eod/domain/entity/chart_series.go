package entity

import "time"

// LabelLayout formats chart date labels as en-US short dates (1/2/2024).
const LabelLayout = "1/2/2006"

// OHLCPoint is one candlestick of the price series.
type OHLCPoint struct {
	Date  time.Time
	Label string
	Open  float64
	High  float64
	Low   float64
	Close float64
}

// VolumePoint is one bar of the volume series.
type VolumePoint struct {
	Date   time.Time
	Label  string
	Volume int64
}

// ChartSeries holds the two index-aligned series fed to the chart.
type ChartSeries struct {
	OHLC   []OHLCPoint
	Volume []VolumePoint
}

// Len returns the number of points in each series.
func (s ChartSeries) Len() int { return len(s.OHLC) }

// DateLabel formats t the way chart labels are shown, in UTC.
func DateLabel(t time.Time) string {
	return t.UTC().Format(LabelLayout)
}

// BuildSeries maps records to an OHLC series and a volume series.
// Element i of both series comes from records[i]; no sorting, grouping or
// filtering takes place, so input order is kept as-is.
func BuildSeries(records []PriceRecord) ChartSeries {
	s := ChartSeries{
		OHLC:   make([]OHLCPoint, 0, len(records)),
		Volume: make([]VolumePoint, 0, len(records)),
	}
	for _, r := range records {
		label := DateLabel(r.Date)
		s.OHLC = append(s.OHLC, OHLCPoint{
			Date:  r.Date,
			Label: label,
			Open:  r.Open,
			High:  r.High,
			Low:   r.Low,
			Close: r.Close,
		})
		s.Volume = append(s.Volume, VolumePoint{
			Date:   r.Date,
			Label:  label,
			Volume: r.Volume,
		})
	}
	return s
}
