package chart

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

type LineOptions struct {
	Title      string
	XName      string
	YName      string
	SeriesName string
	Width      string
	Height     string
}

// RenderLine writes a standalone HTML page with one line series. x and y
// must have the same length.
func RenderLine(w io.Writer, o LineOptions, x []string, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("chart: %d labels for %d values", len(x), len(y))
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: o.Title,
			Width:     o.Width,
			Height:    o.Height,
		}),
		charts.WithTitleOpts(opts.Title{Title: o.Title}),
		charts.WithXAxisOpts(opts.XAxis{Name: o.XName}),
		charts.WithYAxisOpts(opts.YAxis{Name: o.YName}),
	)

	data := make([]opts.LineData, len(y))
	for i, v := range y {
		data[i] = opts.LineData{Value: v}
	}

	line.SetXAxis(x).AddSeries(o.SeriesName, data)

	if err := line.Render(w); err != nil {
		return fmt.Errorf("chart: render line: %w", err)
	}

	return nil
}
