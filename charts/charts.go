// Package charts renders the analysis charts as PNG images.
package charts

import (
	"errors"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/blogem/canvass-dashboard/analysis"
	"github.com/blogem/canvass-dashboard/models"
)

// Default chart size in pixels
const (
	Width  = 640
	Height = 400
)

var (
	// ErrNoData is returned when there is nothing to draw.
	ErrNoData = errors.New("no data to chart")
	// ErrUnknownChart is returned by Render for an unregistered name.
	ErrUnknownChart = errors.New("unknown chart")
)

var (
	colorOurs      = drawing.ColorFromHex("2e7d32")
	colorRemaining = drawing.ColorFromHex("e0e0e0")
)

func padded() chart.Style {
	return chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}}
}

func hasData(counts []analysis.Count) bool {
	for _, c := range counts {
		if c.Value > 0 {
			return true
		}
	}
	return false
}

func values(counts []analysis.Count) []chart.Value {
	out := make([]chart.Value, 0, len(counts))
	for _, c := range counts {
		if c.Value <= 0 {
			continue
		}
		out = append(out, chart.Value{Label: fmt.Sprintf("%s (%d)", c.Label, c.Value), Value: float64(c.Value)})
	}
	return out
}

// Pie draws counts as a pie chart.
func Pie(w io.Writer, title string, counts []analysis.Count) error {
	if !hasData(counts) {
		return ErrNoData
	}
	pie := chart.PieChart{
		Title:      title,
		Width:      Width,
		Height:     Height,
		Background: padded(),
		Values:     values(counts),
	}
	return pie.Render(chart.PNG, w)
}

// Bar draws counts as a bar chart with a zero-based axis.
func Bar(w io.Writer, title string, counts []analysis.Count) error {
	if !hasData(counts) {
		return ErrNoData
	}

	bars := make([]chart.Value, 0, len(counts))
	max := 0
	for _, c := range counts {
		bars = append(bars, chart.Value{Label: c.Label, Value: float64(c.Value)})
		if c.Value > max {
			max = c.Value
		}
	}

	bar := chart.BarChart{
		Title:      title,
		Width:      Width,
		Height:     Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 80}},
		BarWidth:   barWidth(len(bars)),
		XAxis:      chart.Style{TextRotationDegrees: 45},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: float64(max)},
		},
		Bars: bars,
	}
	return bar.Render(chart.PNG, w)
}

func barWidth(n int) int {
	w := (Width - 120) / (n * 2)
	if w > 60 {
		return 60
	}
	if w < 8 {
		return 8
	}
	return w
}

// Gauge draws the win estimate as a donut of projected share against the
// remainder.
func Gauge(w io.Writer, title string, est analysis.WinEstimate) error {
	if est.Total <= 0 {
		return ErrNoData
	}

	vals := []chart.Value{
		{Label: fmt.Sprintf("%%%.0f", est.Percent), Value: est.Percent, Style: chart.Style{FillColor: colorOurs}},
	}
	if rest := 100 - est.Percent; rest > 0 {
		vals = append(vals, chart.Value{Label: " ", Value: rest, Style: chart.Style{FillColor: colorRemaining}})
	}

	donut := chart.DonutChart{
		Title:      title,
		Width:      Height,
		Height:     Height,
		Background: padded(),
		Values:     vals,
	}
	return donut.Render(chart.PNG, w)
}

type renderer func(w io.Writer, r *models.AnalysisReport) error

var registry = map[string]renderer{
	"stance": func(w io.Writer, r *models.AnalysisReport) error {
		return Pie(w, "Genel Oy Dağılımı", r.StanceCounts)
	},
	"institutions": func(w io.Writer, r *models.AnalysisReport) error {
		return Bar(w, "Bizi Destekleyenlerin Kurum Dağılımı", r.SupportersByInstitution)
	},
	"contact": func(w io.Writer, r *models.AnalysisReport) error {
		return Pie(w, "Temas Durumu", r.ContactMethods)
	},
	"transport": func(w io.Writer, r *models.AnalysisReport) error {
		return Bar(w, "Ulaşım İhtiyacı", r.TransportNeeds)
	},
	"cohorts": func(w io.Writer, r *models.AnalysisReport) error {
		return Bar(w, "Kıdem Gruplarında Destekçiler", supportersPerRow(r.CohortStance))
	},
	"win": func(w io.Writer, r *models.AnalysisReport) error {
		return Gauge(w, "Kazanma Olasılığı", r.Win)
	},
}

// Names lists the charts Render knows.
var Names = []string{"stance", "institutions", "contact", "transport", "cohorts", "win"}

// Render draws the named chart from a report.
func Render(w io.Writer, name string, report *models.AnalysisReport) error {
	fn, ok := registry[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownChart, name)
	}
	return fn(w, report)
}

// supportersPerRow sums the supporter stance columns of each crosstab row.
func supportersPerRow(ct *analysis.Crosstab) []analysis.Count {
	if ct == nil {
		return nil
	}
	out := make([]analysis.Count, len(ct.RowLabels))
	for i, label := range ct.RowLabels {
		out[i].Label = label
		for j, col := range ct.ColLabels {
			if models.IsSupporterStance(col) {
				out[i].Value += ct.Cells[i][j]
			}
		}
	}
	return out
}
