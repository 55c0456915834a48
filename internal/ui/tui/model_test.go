package tui

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/settings"
	"pomodoro/internal/core/timer"
	"pomodoro/internal/storage"
	"pomodoro/internal/ui/theme"

	tea "github.com/charmbracelet/bubbletea"
)

type fixture struct {
	model     Model
	engine    *timer.Engine
	store     *settings.Store
	scheduler *timer.ManualScheduler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := settings.Open(storage.NewMemory(), settings.Options{Logger: logger, Themes: theme.IDs()})
	scheduler := timer.NewManualScheduler()
	engine := timer.New(store, timer.Options{Scheduler: scheduler, Logger: logger})
	t.Cleanup(engine.Close)
	return &fixture{
		model:     New(engine, store, engine.Subscribe(64)),
		engine:    engine,
		store:     store,
		scheduler: scheduler,
	}
}

func (f *fixture) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	updated, cmd := f.model.Update(msg)
	f.model = updated.(Model)
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeysDriveEngine(t *testing.T) {
	f := newFixture(t)

	f.send(t, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if !f.engine.Snapshot().Running || !f.model.snapshot.Running {
		t.Fatal("space should start the timer")
	}
	f.scheduler.Advance(3 * time.Second)

	f.send(t, runes("r"))
	if got := f.engine.Snapshot(); got.Running || got.Remaining != 1500 {
		t.Errorf("after reset snapshot = %+v", got)
	}

	tests := []struct {
		key  string
		want model.Phase
	}{
		{key: "3", want: model.PhaseLongBreak},
		{key: "2", want: model.PhaseShortBreak},
		{key: "1", want: model.PhaseWork},
	}
	for _, tt := range tests {
		f.send(t, runes(tt.key))
		if got := f.model.snapshot.Phase; got != tt.want {
			t.Errorf("key %q phase = %s, want %s", tt.key, got, tt.want)
		}
	}
}

func TestEditCommitsOnEnter(t *testing.T) {
	f := newFixture(t)

	f.send(t, runes("e"))
	if !f.model.editing {
		t.Fatal("e should open the editor")
	}
	if got := f.model.input.Value(); got != "" {
		t.Errorf("editor value = %q, want empty", got)
	}

	f.send(t, runes("x"))
	f.send(t, runes("1"))
	f.send(t, runes("3"))
	f.send(t, runes("0"))
	if got := f.model.input.Value(); got != "130" {
		t.Errorf("editor value = %q, want 130", got)
	}
	f.send(t, tea.KeyMsg{Type: tea.KeyEnter})

	if f.model.editing {
		t.Error("enter should close the editor")
	}
	if got := f.engine.Snapshot().Remaining; got != 90 {
		t.Errorf("remaining = %d, want 90", got)
	}
	if got := f.store.WorkMinutes(); got != 2 {
		t.Errorf("work minutes = %d, want 2", got)
	}
}

func TestEditEmptyCommitKeepsPhaseLength(t *testing.T) {
	f := newFixture(t)
	f.send(t, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	f.scheduler.Advance(10 * time.Minute)
	f.send(t, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if got := f.engine.Snapshot(); got.Running || got.Remaining != 900 {
		t.Fatalf("paused snapshot = %+v", got)
	}

	f.send(t, runes("e"))
	f.send(t, tea.KeyMsg{Type: tea.KeyEnter})

	if f.model.editing {
		t.Error("enter should close the editor")
	}
	if got := f.engine.Snapshot().Remaining; got != 900 {
		t.Errorf("remaining = %d, want 900", got)
	}
	if got := f.store.WorkMinutes(); got != 25 {
		t.Errorf("work minutes = %d, want 25", got)
	}
}

func TestEditCancelsOnEscape(t *testing.T) {
	f := newFixture(t)
	f.send(t, runes("e"))
	f.model.input.SetValue("0005")
	f.send(t, tea.KeyMsg{Type: tea.KeyEsc})

	if f.model.editing {
		t.Error("esc should close the editor")
	}
	if got := f.engine.Snapshot().Remaining; got != 1500 {
		t.Errorf("remaining = %d, want 1500", got)
	}
}

func TestEditRefusedWhileRunning(t *testing.T) {
	f := newFixture(t)
	f.engine.Start()
	f.send(t, runes("e"))
	if f.model.editing {
		t.Error("editor should not open while running")
	}
	if f.model.notice == "" {
		t.Error("expected a notice explaining the refusal")
	}
}

func TestSettingsKeys(t *testing.T) {
	f := newFixture(t)

	f.send(t, runes("-"))
	f.send(t, runes("-"))
	if got := f.store.Volume(); got != 0.8 {
		t.Errorf("volume = %v, want 0.8", got)
	}
	f.send(t, runes("+"))
	f.send(t, runes("+"))
	f.send(t, runes("+"))
	if got := f.store.Volume(); got != 1 {
		t.Errorf("volume = %v, want 1", got)
	}

	f.send(t, runes("a"))
	if !f.store.AutoTransition() {
		t.Error("a should enable auto transition")
	}
	f.send(t, runes("t"))
	if got := f.store.Theme(); got != theme.IDs()[1] {
		t.Errorf("theme = %q, want %q", got, theme.IDs()[1])
	}
	f.send(t, runes("d"))
	if !f.store.DarkMode() {
		t.Error("d should enable dark mode")
	}

	f.store.RecordCompletion()
	f.send(t, runes("c"))
	if got := f.store.CompletedWorkPhases(); got != 0 {
		t.Errorf("completed = %d, want 0", got)
	}
}

func TestEngineEventsUpdateModel(t *testing.T) {
	f := newFixture(t)
	f.store.SetWorkMinutes(1)
	f.engine.Reset()
	f.engine.Start()
	f.scheduler.Advance(60 * time.Second)

	var complete bool
	for len(f.model.events) > 0 {
		msg := waitForEvent(f.model.events)()
		f.send(t, msg)
		if event, ok := msg.(engineEventMsg); ok && event.event.Type == timer.EventPhaseComplete {
			complete = true
		}
	}
	if !complete {
		t.Fatal("expected a phase complete event")
	}
	if f.model.snapshot.Phase != model.PhaseShortBreak {
		t.Errorf("phase = %s", f.model.snapshot.Phase)
	}
	if !strings.Contains(f.model.notice, "Focus finished") {
		t.Errorf("notice = %q", f.model.notice)
	}
}

func TestEventsClosedQuits(t *testing.T) {
	f := newFixture(t)
	cmd := f.send(t, eventsClosedMsg{})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestViewShowsState(t *testing.T) {
	f := newFixture(t)
	view := f.model.View()
	for _, want := range []string{"25:00", "Focus", "1st pomodoro", "paused", "vol 100%", "Classic"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestStepVolume(t *testing.T) {
	tests := []struct {
		volume, delta, want float64
	}{
		{1, -0.1, 0.9},
		{0.9, -0.1, 0.8},
		{0.3, 0.1, 0.4},
		{0.05, -0.1, -0.05},
	}
	for _, tt := range tests {
		if got := stepVolume(tt.volume, tt.delta); got != tt.want {
			t.Errorf("stepVolume(%v, %v) = %v, want %v", tt.volume, tt.delta, got, tt.want)
		}
	}
}
