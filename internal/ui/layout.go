package ui

import "time"

// Layout sizes.
const (
	// tabsWidth is the width of the tab bar box in the header.
	tabsWidth = 30

	// chartPanelFrac is the share of the width given to the chart panel
	// when charts are shown.
	chartPanelFrac = 0.45

	// minChartWidth is the narrowest chart panel worth drawing.
	minChartWidth = 24

	// statLabelWidth pads labels in the refresh statistics panel.
	statLabelWidth = 16
)

// Log tail on the Filters tab.
const (
	logTailLines    = 6
	logRefreshEvery = time.Second
)
