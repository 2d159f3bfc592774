package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/hivewatch/internal/events"
	"github.com/five82/hivewatch/internal/logtail"
	"github.com/five82/hivewatch/internal/state"
)

// ErrEventsClosed is returned by Run when the event stream ends before the
// user quits.
var ErrEventsClosed = errors.New("event stream closed")

// Options configures the UI.
type Options struct {
	Dashboard *state.Dashboard
	// Input receives every key press; the dashboard sees them only after
	// they come back through Events.
	Input  *events.ChanInput
	Events <-chan events.Event
	Theme  string
	// LogPath is tailed on the Filters tab. Empty disables the log panel.
	LogPath string
}

// Model is the root Bubble Tea model. It never changes dashboard state on
// its own: keys go to Input, and state advances only when an event arrives.
type Model struct {
	dash   *state.Dashboard
	input  *events.ChanInput
	events <-chan events.Event

	theme  Theme
	styles Styles
	help   help.Model
	gauge  progress.Model

	snapshot state.Snapshot
	width    int
	height   int
	ready    bool
	dropped  int // keys dropped because the input buffer was full
	err      error

	logPath     string
	logLines    []string
	logErr      error
	lastLogRead time.Time
}

// New creates a new Bubble Tea model.
func New(opts Options) (Model, error) {
	if opts.Dashboard == nil || opts.Input == nil || opts.Events == nil {
		return Model{}, fmt.Errorf("ui needs a dashboard, an input and an event stream")
	}
	theme := GetTheme(opts.Theme)
	styles := theme.Styles()

	h := help.New()
	h.Styles.ShortKey = styles.WarningText
	h.Styles.ShortDesc = styles.MutedText
	h.Styles.ShortSeparator = styles.FaintText
	h.Styles.FullKey = styles.WarningText
	h.Styles.FullDesc = styles.Text
	h.Styles.FullSeparator = styles.FaintText

	gauge := progress.New(
		progress.WithSolidFill(theme.Accent),
		progress.WithoutPercentage(),
	)
	gauge.EmptyColor = theme.Border

	return Model{
		dash:     opts.Dashboard,
		input:    opts.Input,
		events:   opts.Events,
		theme:    theme,
		styles:   styles,
		help:     h,
		gauge:    gauge,
		snapshot: opts.Dashboard.Snapshot(),
		logPath:  opts.LogPath,
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.input.Push(events.Key(msg.String())) {
			m.dropped++
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case eventMsg:
		return m.handleEvent(events.Event(msg))

	case logLinesMsg:
		m.logLines = msg.lines
		m.logErr = msg.err
		return m, nil

	case eventsClosedMsg:
		if !m.snapshot.Quit {
			m.err = ErrEventsClosed
		}
		return m, tea.Quit
	}

	return m, nil
}

// handleEvent applies one multiplexed event to the dashboard and re-arms the
// event listener.
func (m Model) handleEvent(ev events.Event) (tea.Model, tea.Cmd) {
	if err := m.dash.Advance(ev); err != nil {
		m.err = err
		return m, tea.Quit
	}
	m.snapshot = m.dash.Snapshot()
	if m.snapshot.Quit {
		return m, tea.Quit
	}
	if m.logDue(ev) {
		m.lastLogRead = ev.At
		return m, tea.Batch(waitForEvent(m.events), readLog(m.logPath))
	}
	return m, waitForEvent(m.events)
}

// logDue reports whether the log tail should be re-read. It is only read
// while the Filters tab is visible.
func (m Model) logDue(ev events.Event) bool {
	if m.logPath == "" || m.snapshot.Tab != state.TabFilters {
		return false
	}
	return m.lastLogRead.IsZero() || ev.At.Sub(m.lastLogRead) >= logRefreshEvery
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.snapshot.ShowHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// renderMain renders the full dashboard.
func (m Model) renderMain() string {
	header := m.renderHeader()
	footer := m.renderFooter()
	bodyHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 3)

	var body string
	switch m.snapshot.Tab {
	case state.TabFilters:
		body = m.renderFiltersTab(bodyHeight)
	default:
		body = m.renderPostsTab(bodyHeight)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// Err returns the fatal error that ended the program, if any.
func (m Model) Err() error { return m.err }

// Messages

type eventMsg events.Event

type eventsClosedMsg struct{}

type logLinesMsg struct {
	lines []string
	err   error
}

// Commands

func waitForEvent(ch <-chan events.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return eventsClosedMsg{}
		}
		return eventMsg(ev)
	}
}

func readLog(path string) tea.Cmd {
	return func() tea.Msg {
		lines, err := logtail.Read(path, logTailLines)
		return logLinesMsg{lines: logtail.Pretty(lines), err: err}
	}
}

// Run starts the Bubble Tea program and blocks until the user quits, a fatal
// error occurs or ctx is cancelled.
func Run(ctx context.Context, opts Options, progOpts ...tea.ProgramOption) error {
	m, err := New(opts)
	if err != nil {
		return err
	}
	progOpts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, progOpts...)
	p := tea.NewProgram(m, progOpts...)
	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("run terminal program: %w", err)
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
