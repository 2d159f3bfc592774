package ui_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/require"

	"github.com/five82/hivewatch/internal/clip"
	"github.com/five82/hivewatch/internal/events"
	"github.com/five82/hivewatch/internal/hive"
	"github.com/five82/hivewatch/internal/refresh"
	"github.com/five82/hivewatch/internal/state"
	"github.com/five82/hivewatch/internal/ui"
)

const waitFor = 3 * time.Second

// newProgram wires a dashboard, a running multiplexer and the UI model the
// same way the app does, minus the fetch worker.
func newProgram(t *testing.T, results chan refresh.Result) *teatest.TestModel {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	sched := refresh.NewScheduler(time.Minute, make(chan struct{}, 1), nil)
	dash, err := state.New(state.Options{
		Scheduler: sched,
		Results:   results,
		Clipboard: clip.Unsupported{},
		BaseURL:   "https://www.hiveworkshop.com",
		Filters:   []string{"Off-topic"},
	})
	require.NoError(t, err)
	t.Cleanup(dash.Close)

	input := events.NewChanInput(16)
	out := make(chan events.Event, 64)
	go func() { _ = events.Run(ctx, input, 20*time.Millisecond, out) }()

	m, err := ui.New(ui.Options{Dashboard: dash, Input: input, Events: out})
	require.NoError(t, err)

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(120, 40))
	tm.Send(tea.WindowSizeMsg{Width: 120, Height: 40})
	return tm
}

func TestProgram_RendersRecordsAndQuits(t *testing.T) {
	results := make(chan refresh.Result, 8)
	tm := newProgram(t, results)

	results <- refresh.Result{Record: hive.Record{Title: "Hero arena", Forum: "Maps", Href: "threads/hero-arena.1/"}}
	results <- refresh.Result{Record: hive.Record{Title: "Chatter", Forum: "Off-topic", Href: "threads/chatter.2/"}}

	teatest.WaitFor(t, tm.Output(),
		func(b []byte) bool { return bytes.Contains(b, []byte("Hero arena")) },
		teatest.WithDuration(waitFor),
	)

	tm.Type("q")
	tm.WaitFinished(t, teatest.WithFinalTimeout(waitFor))

	final, ok := tm.FinalModel(t).(ui.Model)
	require.True(t, ok)
	require.NoError(t, final.Err())
}

func TestProgram_SelectionShowsURL(t *testing.T) {
	results := make(chan refresh.Result, 8)
	tm := newProgram(t, results)

	results <- refresh.Result{Record: hive.Record{Title: "Footman model", Forum: "Models", Href: "threads/footman.9/"}}
	teatest.WaitFor(t, tm.Output(),
		func(b []byte) bool { return bytes.Contains(b, []byte("Footman model")) },
		teatest.WithDuration(waitFor),
	)

	tm.Send(tea.KeyMsg{Type: tea.KeyDown})
	teatest.WaitFor(t, tm.Output(),
		func(b []byte) bool { return bytes.Contains(b, []byte("threads/footman.9/")) },
		teatest.WithDuration(waitFor),
	)

	tm.Type("q")
	tm.WaitFinished(t, teatest.WithFinalTimeout(waitFor))
}
