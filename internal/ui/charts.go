package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/hivewatch/internal/signals"
)

const sin2DataSet = "sin2"

// sinYRange covers both sin signals with a little headroom.
const sinYRange = 20.0

// renderCharts stacks the sparkline above the sin chart.
func (m Model) renderCharts(width, height int) string {
	inner := max(width-2, 4)
	sparkHeight := max((height-4)/3, 2)
	lineHeight := max(height-sparkHeight-6, 4)

	spark := m.renderSparkline(inner, sparkHeight)
	line := m.renderSinChart(inner, lineHeight)

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.PanelTitle.Render("Activity"),
		spark,
		m.styles.PanelTitle.Render("Waves"),
		line,
	)
	return m.styles.Panel.
		Width(inner).
		Height(max(height-2, 1)).
		Render(content)
}

func (m Model) renderSparkline(width, height int) string {
	data := m.snapshot.Sparkline
	sl := sparkline.New(width, height,
		sparkline.WithStyle(m.styles.Spark),
		sparkline.WithMaxValue(100),
	)
	// Only the newest width points fit on screen.
	if len(data) > width {
		data = data[len(data)-width:]
	}
	values := make([]float64, len(data))
	for i, v := range data {
		values[i] = float64(v)
	}
	sl.PushAll(values)
	if m.snapshot.EnhancedGraphics {
		sl.DrawBraille()
	} else {
		sl.Draw()
	}
	return sl.View()
}

// xTime maps a signal x value onto the time axis the chart expects.
func xTime(x float64) time.Time {
	return time.Unix(0, 0).UTC().Add(time.Duration(x * float64(time.Second)))
}

func (m Model) renderSinChart(width, height int) string {
	snap := m.snapshot
	lo, hi := xTime(snap.Window.Lo), xTime(snap.Window.Hi)

	chart := timeserieslinechart.New(width, height,
		timeserieslinechart.WithTimeRange(lo, hi),
		timeserieslinechart.WithYRange(-sinYRange, sinYRange),
		timeserieslinechart.WithAxesStyles(m.styles.Axis, m.styles.Label),
		timeserieslinechart.WithStyle(m.styles.Series[0]),
		timeserieslinechart.WithXLabelFormatter(func(_ int, v float64) string {
			return fmt.Sprintf("%.0f", v)
		}),
		timeserieslinechart.WithYLabelFormatter(func(_ int, v float64) string {
			return fmt.Sprintf("%.0f", v)
		}),
		timeserieslinechart.WithXYSteps(2, 2),
	)
	chart.SetDataSetStyle(sin2DataSet, m.styles.Series[1])

	pushVisible(snap.Sin1, snap.Window, func(p signals.Point) {
		chart.Push(timeserieslinechart.TimePoint{Time: xTime(p.X), Value: p.Y})
	})
	pushVisible(snap.Sin2, snap.Window, func(p signals.Point) {
		chart.PushDataSet(sin2DataSet, timeserieslinechart.TimePoint{Time: xTime(p.X), Value: p.Y})
	})

	if snap.EnhancedGraphics {
		chart.DrawBrailleAll()
	} else {
		chart.DrawAll()
	}
	return chart.View()
}

func pushVisible(points []signals.Point, w signals.Window, push func(signals.Point)) {
	for _, p := range points {
		if p.X >= w.Lo && p.X <= w.Hi {
			push(p)
		}
	}
}

// renderStatsChart draws one bar per refresh outcome.
func (m Model) renderStatsChart(width, height int) string {
	st := m.snapshot.Stats
	bars := []struct {
		label string
		value int
		style lipgloss.Style
	}{
		{"listed", st.Admitted, m.styles.SuccessText},
		{"filtered", st.Filtered, m.styles.WarningText},
		{"dupes", st.Duplicates, m.styles.MutedText},
		{"failed", st.Failures, m.styles.DangerText},
	}

	bc := barchart.New(width, height,
		barchart.WithBarGap(2),
		barchart.WithStyles(m.styles.Axis, m.styles.Label),
	)
	for _, b := range bars {
		style := b.style.Background(b.style.GetForeground())
		bc.Push(barchart.BarData{
			Label: b.label,
			Values: []barchart.BarValue{
				{Name: b.label, Value: float64(b.value), Style: style},
			},
		})
	}
	bc.Draw()

	view := bc.View()
	if strings.TrimSpace(view) == "" {
		return m.styles.FaintText.Render("No data yet")
	}
	return view
}
