package nav

import "slices"

// Tabs is a fixed, ordered set of view titles with a current index.
type Tabs struct {
	titles []string
	index  int
}

// NewTabs returns tabs positioned on the first title.
func NewTabs(titles ...string) *Tabs {
	return &Tabs{titles: slices.Clone(titles)}
}

// Titles returns a copy of the tab titles.
func (t *Tabs) Titles() []string { return slices.Clone(t.titles) }

// Index returns the current tab index.
func (t *Tabs) Index() int { return t.index }

// Title returns the current tab title, or "" when there are no tabs.
func (t *Tabs) Title() string {
	if len(t.titles) == 0 {
		return ""
	}
	return t.titles[t.index]
}

// Next advances to the following tab, wrapping around.
func (t *Tabs) Next() {
	if len(t.titles) == 0 {
		return
	}
	t.index = (t.index + 1) % len(t.titles)
}

// Previous steps back to the preceding tab, wrapping around.
func (t *Tabs) Previous() {
	if len(t.titles) == 0 {
		return
	}
	t.index = (t.index + len(t.titles) - 1) % len(t.titles)
}
