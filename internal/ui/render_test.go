package ui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/hivewatch/internal/clip"
	"github.com/five82/hivewatch/internal/events"
	"github.com/five82/hivewatch/internal/hive"
	"github.com/five82/hivewatch/internal/refresh"
	"github.com/five82/hivewatch/internal/state"
)

type fixture struct {
	model   Model
	now     time.Time
	input   *events.ChanInput
	results chan refresh.Result
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		now:     time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		input:   events.NewChanInput(8),
		results: make(chan refresh.Result, 16),
	}
	sched := refresh.NewScheduler(60*time.Second, make(chan struct{}, 1), func() time.Time { return f.now })
	dash, err := state.New(state.Options{
		Scheduler:        sched,
		Results:          f.results,
		Clipboard:        clip.Unsupported{},
		BaseURL:          "https://www.hiveworkshop.com",
		Filters:          []string{"Off-topic", "Skins"},
		EnhancedGraphics: true,
		ShowChart:        true,
	})
	if err != nil {
		t.Fatalf("state.New returned error: %v", err)
	}
	t.Cleanup(dash.Close)

	m, err := New(Options{Dashboard: dash, Input: f.input, Events: make(chan events.Event), Theme: "Slate"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	f.model = next.(Model)
	return f
}

func (f *fixture) apply(t *testing.T, ev events.Event) tea.Cmd {
	t.Helper()
	next, cmd := f.model.Update(eventMsg(ev))
	f.model = next.(Model)
	return cmd
}

func (f *fixture) tick(t *testing.T) tea.Cmd {
	t.Helper()
	f.now = f.now.Add(250 * time.Millisecond)
	return f.apply(t, events.NewTick(f.now))
}

func (f *fixture) key(t *testing.T, k string) tea.Cmd {
	t.Helper()
	return f.apply(t, events.NewInput(events.Key(k), f.now))
}

func TestView_LoadingUntilSized(t *testing.T) {
	f := newFixture(t)
	m := f.model
	m.ready = false
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View before size = %q, want Loading...", got)
	}
}

func TestView_HeaderAndEmptyList(t *testing.T) {
	f := newFixture(t)
	out := f.model.View()

	for _, want := range []string{"New posts", "Filters", "Reload in 60s", "Topics (0)", "Select a thread with the arrow keys"} {
		if !strings.Contains(out, want) {
			t.Fatalf("View missing %q:\n%s", want, out)
		}
	}
}

func TestView_ListsRecordsAndSelectedURL(t *testing.T) {
	f := newFixture(t)
	f.results <- refresh.Result{Record: hive.Record{Title: "Older", Forum: "Maps", Href: "threads/older.1/"}}
	f.results <- refresh.Result{Record: hive.Record{Title: "Newer", Forum: "Models", Href: "threads/newer.2/"}}
	f.tick(t)
	f.key(t, "j")

	out := f.model.View()
	if !strings.Contains(out, "Topics (2)") {
		t.Fatalf("View missing record count:\n%s", out)
	}
	newer := strings.Index(out, "Newer")
	older := strings.Index(out, "Older")
	if newer < 0 || older < 0 || newer > older {
		t.Fatalf("newest record should be listed first:\n%s", out)
	}
	if !strings.Contains(out, "https://www.hiveworkshop.com/threads/newer.2/") {
		t.Fatalf("footer missing selected URL:\n%s", out)
	}
}

func TestView_ErrorsReplaceFooter(t *testing.T) {
	f := newFixture(t)
	f.results <- refresh.Result{Err: errors.New("refresh: fetch /find-new/posts returned status 503")}
	f.tick(t)

	out := f.model.View()
	if !strings.Contains(out, "status 503") {
		t.Fatalf("View missing error:\n%s", out)
	}
	if strings.Contains(out, "Select a thread") {
		t.Fatalf("footer should show errors instead of the hint:\n%s", out)
	}
}

func TestView_ChartsAndHelp(t *testing.T) {
	f := newFixture(t)
	if out := f.model.View(); !strings.Contains(out, "Activity") || !strings.Contains(out, "Waves") {
		t.Fatalf("chart panel missing at startup:\n%s", out)
	}
	f.key(t, "t")
	if out := f.model.View(); strings.Contains(out, "Activity") {
		t.Fatalf("t should hide the chart panel:\n%s", out)
	}

	f.key(t, "?")
	out := f.model.View()
	if !strings.Contains(out, "Keyboard Shortcuts") || !strings.Contains(out, "Refresh now") {
		t.Fatalf("help overlay missing:\n%s", out)
	}
}

func TestView_FiltersTab(t *testing.T) {
	f := newFixture(t)
	f.key(t, "right")

	out := f.model.View()
	for _, want := range []string{"Filtered forums", "Off-topic", "Skins", "Failed fetches", "Last request", "never"} {
		if !strings.Contains(out, want) {
			t.Fatalf("filters tab missing %q:\n%s", want, out)
		}
	}
}

func TestFiltersTab_ShowsLogTail(t *testing.T) {
	f := newFixture(t)
	path := filepath.Join(t.TempDir(), "hivewatch.log")
	line := `{"level":"warn","component":"worker","time":"2026-10-19T12:30:45Z","message":"fetch failed"}`
	if err := os.WriteFile(path, []byte(line+"\n"), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	f.model.logPath = path

	if f.model.logDue(events.NewTick(f.now)) {
		t.Fatalf("log read due while the posts tab is shown")
	}

	// Switching to the filters tab reads the log right away.
	if cmd := f.key(t, "right"); cmd == nil {
		t.Fatalf("tab switch returned no command")
	}
	if !f.model.lastLogRead.Equal(f.now) {
		t.Fatalf("lastLogRead = %v, want %v", f.model.lastLogRead, f.now)
	}
	if f.model.logDue(events.NewTick(f.now.Add(logRefreshEvery / 2))) {
		t.Fatalf("log read due before the refresh interval")
	}
	if !f.model.logDue(events.NewTick(f.now.Add(logRefreshEvery))) {
		t.Fatalf("log read not due after the refresh interval")
	}

	next, _ := f.model.Update(readLog(path)())
	f.model = next.(Model)
	out := f.model.View()
	for _, want := range []string{"Recent log", "WRN", "fetch failed"} {
		if !strings.Contains(out, want) {
			t.Fatalf("filters tab missing %q:\n%s", want, out)
		}
	}
}

func TestUpdate_KeysGoToInput(t *testing.T) {
	f := newFixture(t)
	next, cmd := f.model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	f.model = next.(Model)
	if cmd != nil {
		t.Fatalf("key press returned a command; keys must go through the input")
	}
	if f.model.snapshot.Quit {
		t.Fatalf("key press changed state directly")
	}

	key, ok, err := f.input.Poll(context.Background(), 0)
	if err != nil || !ok || key != "q" {
		t.Fatalf("Poll = %q %v %v, want q true nil", key, ok, err)
	}
}

func TestUpdate_QuitEventEndsProgram(t *testing.T) {
	f := newFixture(t)
	cmd := f.key(t, "q")
	if cmd == nil {
		t.Fatalf("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("quit command did not produce tea.QuitMsg")
	}
	if f.model.Err() != nil {
		t.Fatalf("quit recorded error %v", f.model.Err())
	}
}

func TestUpdate_FatalAdvanceErrorIsKept(t *testing.T) {
	f := newFixture(t)
	close(f.results)
	cmd := f.tick(t)
	if !errors.Is(f.model.Err(), state.ErrResultsClosed) {
		t.Fatalf("Err = %v, want ErrResultsClosed", f.model.Err())
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("fatal error should quit the program")
	}
}

func TestUpdate_ClosedEventStream(t *testing.T) {
	f := newFixture(t)
	next, _ := f.model.Update(eventsClosedMsg{})
	if !errors.Is(next.(Model).Err(), ErrEventsClosed) {
		t.Fatalf("Err = %v, want ErrEventsClosed", next.(Model).Err())
	}
}

func TestReloadLabel_RoundsUp(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{60 * time.Second, "Reload in 60s"},
		{1500 * time.Millisecond, "Reload in 2s"},
		{0, "Reload in 0s"},
	}
	for _, tc := range cases {
		if got := reloadLabel(tc.in); got != tc.want {
			t.Fatalf("reloadLabel(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestVisibleRange_KeepsSelectionOnScreen(t *testing.T) {
	cases := []struct {
		n, selected, height int
		start, end          int
	}{
		{5, -1, 10, 0, 5},
		{20, 3, 10, 0, 10},
		{20, 15, 10, 6, 16},
		{20, 19, 10, 10, 20},
		{0, -1, 10, 0, 0},
	}
	for _, tc := range cases {
		start, end := visibleRange(tc.n, tc.selected, tc.height)
		if start != tc.start || end != tc.end {
			t.Fatalf("visibleRange(%d, %d, %d) = %d,%d want %d,%d",
				tc.n, tc.selected, tc.height, start, end, tc.start, tc.end)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("  hello world  ", 8); got != "hello..." {
		t.Fatalf("truncate = %q, want hello...", got)
	}
	if got := truncate("hi", 8); got != "hi" {
		t.Fatalf("truncate short = %q", got)
	}
}

func TestGetTheme_FallsBack(t *testing.T) {
	if GetTheme("nope").Name != "Nightfox" {
		t.Fatalf("unknown theme should fall back to Nightfox")
	}
	for _, name := range ThemeNames() {
		if GetTheme(name).Name != name {
			t.Fatalf("GetTheme(%q) returned %q", name, GetTheme(name).Name)
		}
	}
}
