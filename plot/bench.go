// Package plot renders benchmark telemetry with go-echarts, in the
// teacher's Additionnals/plot_pacs_sweep.go idiom: build a chart,
// set global options, add one series per line, render to an HTML file.
package plot

import (
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// IterationLatency renders one per-iteration latency sample in
// microseconds, used as a single point in a Latency chart.
type IterationLatency struct {
	Iteration int
	Micros    int64
}

// WriteLatencyChart writes an interactive HTML line chart of
// per-iteration key-exchange latency to w.
func WriteLatencyChart(w io.Writer, preset string, samples []IterationLatency) error {
	page := components.NewPage().SetPageTitle("rlwebench latency")

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Key-exchange latency per iteration",
			Subtitle: preset,
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "iteration", Type: "category"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "microseconds", Type: "value"}),
		charts.WithDataZoomOpts(
			opts.DataZoom{Type: "inside"},
			opts.DataZoom{Type: "slider"},
		),
	)

	xAxis := make([]string, 0, len(samples))
	items := make([]opts.LineData, 0, len(samples))
	for _, s := range samples {
		xAxis = append(xAxis, strconv.Itoa(s.Iteration))
		items = append(items, opts.LineData{Value: s.Micros})
	}

	line.SetXAxis(xAxis).AddSeries("latency (us)", items)
	page.AddCharts(line)

	return page.Render(w)
}
