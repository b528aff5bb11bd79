package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"fleet-app-go/internal/report"
)

// Chart palette lifted from the dashboard theme.
var chartPalette = []drawing.Color{
	drawing.ColorFromHex("0284c7"),
	drawing.ColorFromHex("0ea5e9"),
	drawing.ColorFromHex("38bdf8"),
	drawing.ColorFromHex("7dd3fc"),
	drawing.ColorFromHex("a5f3fc"),
}

func monthlyKmChart(rows []report.MonthlyRow, width, height int) (image.Image, error) {
	bars := make([]chart.Value, 0, len(rows))
	for _, row := range rows {
		bars = append(bars, chart.Value{
			Label: row.Month,
			Value: row.Km,
			Style: chart.Style{FillColor: chartPalette[0], StrokeColor: chartPalette[0]},
		})
	}

	kms := make([]float64, 0, len(rows))
	for _, row := range rows {
		kms = append(kms, row.Km)
	}

	graph := chart.BarChart{
		Width:    width,
		Height:   height,
		BarWidth: barWidthFor(width, len(bars)),
		XAxis:    chart.Style{FontSize: chartFontSize},
		YAxis: chart.YAxis{
			Style: chart.Style{FontSize: chartFontSize},
			Range: yRange(kms),
		},
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 10, Right: 10, Bottom: 10}},
		Bars:       bars,
	}

	return renderChartPNG(graph.Render)
}

func monthlyCostChart(rows []report.MonthlyRow, width, height int) (image.Image, error) {
	xs := make([]float64, 0, len(rows))
	fuel := make([]float64, 0, len(rows))
	expense := make([]float64, 0, len(rows))
	ticks := make([]chart.Tick, 0, len(rows))
	for i, row := range rows {
		xs = append(xs, float64(i))
		fuel = append(fuel, row.Fuel)
		expense = append(expense, row.Expense)
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: row.Month})
	}

	graph := chart.Chart{
		Width:  width,
		Height: height,
		XAxis: chart.XAxis{
			Ticks: ticks,
			Style: chart.Style{FontSize: chartFontSize},
		},
		YAxis: chart.YAxis{
			Style: chart.Style{FontSize: chartFontSize},
			Range: yRange(append(append([]float64{}, fuel...), expense...)),
		},
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 10, Right: 10, Bottom: 10}},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Combustível (R$)",
				XValues: xs,
				YValues: fuel,
				Style:   chart.Style{StrokeColor: chartPalette[2], StrokeWidth: 3},
			},
			chart.ContinuousSeries{
				Name:    "Despesas (R$)",
				XValues: xs,
				YValues: expense,
				Style:   chart.Style{StrokeColor: drawing.ColorFromHex("f43f5e"), StrokeWidth: 3},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph, chart.Style{FontSize: chartFontSize})}

	return renderChartPNG(graph.Render)
}

func expensePieChart(rows []report.CategoryRow, width, height int) (image.Image, error) {
	values := make([]chart.Value, 0, len(rows))
	for i, row := range rows {
		if row.Value <= 0 {
			continue
		}
		color := chartPalette[i%len(chartPalette)]
		values = append(values, chart.Value{
			Label: row.Name,
			Value: row.Value,
			Style: chart.Style{FillColor: color, StrokeColor: color, FontSize: chartFontSize},
		})
	}
	if len(values) == 0 {
		return nil, errNoChartData
	}

	graph := chart.PieChart{
		Width:  width,
		Height: height,
		Values: values,
	}

	return renderChartPNG(graph.Render)
}

func renderChartPNG(render func(chart.RendererProvider, io.Writer) error) (image.Image, error) {
	var buf bytes.Buffer
	if err := render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode chart: %w", err)
	}
	return img, nil
}

// yRange pins the value axis to an explicit span. go-chart refuses to render
// a zero-spread range, which a single monthly bucket or all-equal values would
// otherwise produce.
func yRange(values []float64) *chart.ContinuousRange {
	lo, hi := 0.0, 0.0
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi <= lo {
		hi = lo + 1
	}
	return &chart.ContinuousRange{Min: lo, Max: hi}
}

func barWidthFor(width, bars int) int {
	if bars == 0 {
		return 20
	}
	w := width / (bars * 2)
	if w < 20 {
		w = 20
	}
	if w > 120 {
		w = 120
	}
	return w
}
