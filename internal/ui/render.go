package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// renderHeader draws the tab bar and the reload gauge side by side.
func (m Model) renderHeader() string {
	snap := m.snapshot

	tabs := make([]string, 0, len(snap.Tabs))
	for i, title := range snap.Tabs {
		if i == snap.Tab {
			tabs = append(tabs, m.styles.ActiveTab.Render(title))
		} else {
			tabs = append(tabs, m.styles.Tab.Render(title))
		}
	}
	tabsBox := m.styles.Panel.
		Width(tabsWidth).
		Render(strings.Join(tabs, m.styles.FaintText.Render("│")))

	gaugeWidth := max(m.width-tabsWidth-4, 10)
	label := reloadLabel(snap.Remaining)
	m.gauge.Width = max(gaugeWidth-lipgloss.Width(label)-3, 4)
	gaugeLine := m.gauge.ViewAs(snap.Progress) + "  " + m.styles.Text.Italic(true).Bold(true).Render(label)
	gaugeBox := m.styles.Panel.Width(gaugeWidth).Render(gaugeLine)

	return lipgloss.JoinHorizontal(lipgloss.Top, tabsBox, gaugeBox)
}

// reloadLabel rounds up so the label never reads "Reload in 0s" while a
// refresh is still pending.
func reloadLabel(remaining time.Duration) string {
	secs := int(math.Ceil(remaining.Seconds()))
	return fmt.Sprintf("Reload in %ds", max(secs, 0))
}

// renderPostsTab draws the thread list and, when enabled, the charts.
func (m Model) renderPostsTab(height int) string {
	listWidth := m.width
	var charts string
	if m.snapshot.ShowChart {
		chartWidth := max(int(float64(m.width)*chartPanelFrac), minChartWidth)
		listWidth = max(m.width-chartWidth, 20)
		charts = m.renderCharts(chartWidth, height)
	}

	list := m.renderTopics(listWidth, height)
	if charts == "" {
		return list
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, list, charts)
}

func (m Model) renderTopics(width, height int) string {
	snap := m.snapshot
	inner := max(width-2, 1)
	rows := max(height-3, 1) // border + title

	var lines []string
	title := fmt.Sprintf("Topics (%d)", len(snap.Records))
	lines = append(lines, m.styles.PanelTitle.Render(title))

	if len(snap.Records) == 0 {
		msg := "Waiting for the first refresh..."
		if snap.Stats.Received > 0 {
			msg = "Every new thread so far is filtered"
		}
		lines = append(lines, m.styles.FaintText.Render(msg))
	}

	start, end := visibleRange(len(snap.Records), snap.Selected, rows)
	for i := start; i < end; i++ {
		rec := snap.Records[i]
		if i == snap.Selected {
			text := padRight(truncate("> "+rec.String(), inner), inner)
			lines = append(lines, m.styles.Selected.Render(text))
			continue
		}
		forum := m.styles.AccentText.Render(rec.Forum)
		rest := truncate(" :: "+rec.Title, max(inner-2-lipgloss.Width(rec.Forum), 0))
		lines = append(lines, "  "+forum+m.styles.Text.Render(rest))
	}

	return m.styles.ActivePanel.
		Width(inner).
		Height(max(height-2, 1)).
		Render(strings.Join(lines, "\n"))
}

// renderFooter shows the error list when it is non-empty and the selected
// thread URL otherwise.
func (m Model) renderFooter() string {
	snap := m.snapshot
	width := max(m.width-2, 1)

	var lines []string
	if snap.HasErrors() {
		for _, msg := range snap.Errors {
			lines = append(lines, m.styles.ErrorLine.Render(padRight(truncate(msg, width), width)))
		}
		lines = append(lines, m.styles.FaintText.Render("x to clear errors"))
	} else {
		switch {
		case snap.SelectedURL != "":
			lines = append(lines, m.styles.Text.Render(truncate(snap.SelectedURL, width)))
		default:
			lines = append(lines, m.styles.MutedText.Render("Select a thread with the arrow keys"))
		}
		lines = append(lines, m.help.ShortHelpView(m.dash.Keys().ShortHelp()))
	}

	return lipgloss.NewStyle().Padding(0, 1).Render(strings.Join(lines, "\n"))
}

// renderFiltersTab lists the filtered forums next to the refresh statistics.
func (m Model) renderFiltersTab(height int) string {
	snap := m.snapshot
	leftWidth := max(m.width*3/10, 20)
	rightWidth := max(m.width-leftWidth, 20)

	var left []string
	left = append(left, m.styles.PanelTitle.Render("Filtered forums"))
	if len(snap.Filters) == 0 {
		left = append(left, m.styles.FaintText.Render("No filters configured"))
	}
	rows := max(height-3, 1)
	start, end := visibleRange(len(snap.Filters), snap.FilterSelected, rows)
	for i := start; i < end; i++ {
		name := truncate(snap.Filters[i], leftWidth-4)
		if i == snap.FilterSelected {
			left = append(left, m.styles.Selected.Render(padRight("> "+name, leftWidth-2)))
		} else {
			left = append(left, "  "+m.styles.Text.Render(name))
		}
	}
	leftBox := m.styles.ActivePanel.
		Width(leftWidth - 2).
		Height(max(height-2, 1)).
		Render(strings.Join(left, "\n"))

	rightBox := m.styles.Panel.
		Width(rightWidth - 2).
		Height(max(height-2, 1)).
		Render(m.renderStats(rightWidth-2, height-2))

	return lipgloss.JoinHorizontal(lipgloss.Top, leftBox, rightBox)
}

func (m Model) renderStats(width, height int) string {
	snap := m.snapshot
	st := snap.Stats

	lines := []string{
		m.styles.PanelTitle.Render("Refresh"),
		m.statLine("Interval", snap.Period.String()),
		m.statLine("Last request", sinceOrNever(snap.LastRequest)),
		m.statLine("Last result", sinceOrNever(snap.LastRefresh)),
		m.statLine("Received", humanize.Comma(int64(st.Received))),
		m.statLine("Listed", humanize.Comma(int64(len(snap.Records)))),
		m.statLine("Filtered", humanize.Comma(int64(st.Filtered))),
		m.statLine("Duplicates", humanize.Comma(int64(st.Duplicates))),
		m.statLine("Failed fetches", humanize.Comma(int64(st.Failures))),
	}
	if m.dropped > 0 {
		lines = append(lines, m.statLine("Dropped keys", humanize.Comma(int64(m.dropped))))
	}
	if m.logPath != "" {
		lines = append(lines, "", m.styles.PanelTitle.Render("Recent log"))
		lines = append(lines, m.renderLog(width)...)
	}

	chartHeight := height - len(lines) - 1
	if chartHeight >= 4 {
		lines = append(lines, "", m.renderStatsChart(width, chartHeight))
	}
	return strings.Join(lines, "\n")
}

func sinceOrNever(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return humanize.Time(t)
}

func (m Model) statLine(label, value string) string {
	return m.styles.MutedText.Render(padRight(label, statLabelWidth)) + m.styles.Text.Render(value)
}

func (m Model) renderLog(width int) []string {
	if m.logErr != nil {
		return []string{m.styles.DangerText.Render(truncate(m.logErr.Error(), width))}
	}
	if len(m.logLines) == 0 {
		return []string{m.styles.FaintText.Render("Nothing logged yet")}
	}
	out := make([]string, 0, len(m.logLines))
	for _, line := range m.logLines {
		out = append(out, m.styles.MutedText.Render(truncate(line, width)))
	}
	return out
}
