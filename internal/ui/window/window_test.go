package window

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/settings"
	"pomodoro/internal/core/timer"
	"pomodoro/internal/storage"
	"pomodoro/internal/ui/theme"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
)

func newTestWindow(t *testing.T) (*Window, *timer.Engine, *settings.Store) {
	t.Helper()
	view, engine, store, _ := newScheduledTestWindow(t)
	return view, engine, store
}

func newScheduledTestWindow(t *testing.T) (*Window, *timer.Engine, *settings.Store, *timer.ManualScheduler) {
	t.Helper()
	app := test.NewTempApp(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := settings.Open(storage.NewMemory(), settings.Options{Logger: logger, Themes: theme.IDs()})
	scheduler := timer.NewManualScheduler()
	engine := timer.New(store, timer.Options{Scheduler: scheduler, Logger: logger})
	t.Cleanup(engine.Close)
	return New(app, engine, store, Callbacks{}), engine, store, scheduler
}

func TestWindowInitialRender(t *testing.T) {
	view, _, _ := newTestWindow(t)
	if view.clockLabel.Text != "25:00" {
		t.Errorf("clock = %q, want 25:00", view.clockLabel.Text)
	}
	if view.progress.Value != 1 {
		t.Errorf("progress = %v, want 1", view.progress.Value)
	}
	if view.startButton.Text != "Start" {
		t.Errorf("start button = %q", view.startButton.Text)
	}
	if view.phaseButtons[model.PhaseWork].Importance != widget.HighImportance {
		t.Error("work button should be highlighted")
	}
	if view.volumeLabel.Text != "100%" {
		t.Errorf("volume label = %q", view.volumeLabel.Text)
	}
	if _, ok := view.app.Settings().Theme().(*appTheme); !ok {
		t.Error("app theme should be installed")
	}
}

func TestWindowStartButtonToggles(t *testing.T) {
	view, engine, _ := newTestWindow(t)

	test.Tap(view.startButton)
	view.render(engine.Snapshot())
	if !engine.Snapshot().Running {
		t.Fatal("tap should start the engine")
	}
	if view.startButton.Text != "Pause" || !view.editButton.Disabled() {
		t.Errorf("running render: start=%q editDisabled=%v", view.startButton.Text, view.editButton.Disabled())
	}

	view.handleKey(&fyne.KeyEvent{Name: fyne.KeySpace})
	if engine.Snapshot().Running {
		t.Error("space should pause the engine")
	}
}

func TestWindowPhaseButtonSwitches(t *testing.T) {
	view, engine, _ := newTestWindow(t)
	test.Tap(view.phaseButtons[model.PhaseLongBreak])

	snapshot := engine.Snapshot()
	if snapshot.Phase != model.PhaseLongBreak || snapshot.Remaining != 900 {
		t.Fatalf("snapshot = %+v", snapshot)
	}
	view.render(snapshot)
	if view.clockLabel.Text != "15:00" {
		t.Errorf("clock = %q", view.clockLabel.Text)
	}
}

func TestWindowEditCommitsOnEnter(t *testing.T) {
	view, engine, store := newTestWindow(t)

	view.beginEdit()
	if !view.editing {
		t.Fatal("edit should begin while paused")
	}
	view.clockEntry.SetText("1000")
	view.clockEntry.TypedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})

	if view.editing {
		t.Error("Enter should end editing")
	}
	if got := engine.Snapshot().Remaining; got != 600 {
		t.Errorf("remaining = %d, want 600", got)
	}
	if got := store.WorkMinutes(); got != 10 {
		t.Errorf("work minutes = %d, want 10", got)
	}
	if view.clockLabel.Text != "10:00" {
		t.Errorf("clock = %q", view.clockLabel.Text)
	}
}

func TestWindowEditEmptyCommitKeepsPhaseLength(t *testing.T) {
	tests := []struct {
		name   string
		commit func(entry *clockEntry)
	}{
		{name: "enter", commit: func(entry *clockEntry) { entry.TypedKey(&fyne.KeyEvent{Name: fyne.KeyReturn}) }},
		{name: "focus lost", commit: func(entry *clockEntry) { entry.FocusLost() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view, engine, store, scheduler := newScheduledTestWindow(t)
			engine.Start()
			scheduler.Advance(10 * time.Minute)
			engine.Pause()
			view.render(engine.Snapshot())

			view.beginEdit()
			if view.clockEntry.Text != "" {
				t.Errorf("editor text = %q, want empty", view.clockEntry.Text)
			}
			tt.commit(view.clockEntry)

			if view.editing {
				t.Error("commit should end editing")
			}
			if got := engine.Snapshot().Remaining; got != 900 {
				t.Errorf("remaining = %d, want 900", got)
			}
			if got := store.WorkMinutes(); got != 25 {
				t.Errorf("work minutes = %d, want 25", got)
			}
			if view.clockLabel.Text != "15:00" {
				t.Errorf("clock = %q, want 15:00", view.clockLabel.Text)
			}
		})
	}
}

func TestWindowEditCancelsOnEscape(t *testing.T) {
	view, engine, _ := newTestWindow(t)

	view.beginEdit()
	view.clockEntry.SetText("0001")
	view.clockEntry.TypedKey(&fyne.KeyEvent{Name: fyne.KeyEscape})

	if view.editing {
		t.Error("Escape should end editing")
	}
	if got := engine.Snapshot().Remaining; got != 1500 {
		t.Errorf("remaining = %d, want 1500", got)
	}
}

func TestWindowEditRefusedWhileRunning(t *testing.T) {
	view, engine, _ := newTestWindow(t)
	engine.Start()
	view.beginEdit()
	if view.editing {
		t.Error("edit should not begin while running")
	}
}

func TestClockEntryFiltersInput(t *testing.T) {
	entry := newClockEntry()
	for _, r := range "1a2:3b" {
		entry.TypedRune(r)
	}
	if entry.Text != "12:3" {
		t.Errorf("text = %q, want 12:3", entry.Text)
	}
}

func TestWindowPersistsThemeAndVolume(t *testing.T) {
	view, _, store := newTestWindow(t)

	view.themeSelect.SetSelected(theme.Name("forest"))
	view.darkCheck.SetChecked(true)
	view.volume.OnChanged(0)

	values := store.Values()
	if values.Theme != "forest" || !values.DarkMode {
		t.Errorf("theme = %q dark = %v", values.Theme, values.DarkMode)
	}
	if values.Volume != 0 || !values.Muted {
		t.Errorf("volume = %v muted = %v", values.Volume, values.Muted)
	}
	if view.volumeLabel.Text != "Muted" {
		t.Errorf("volume label = %q", view.volumeLabel.Text)
	}
}

func TestAppThemeUsesPaletteRoles(t *testing.T) {
	palette := theme.Lookup("classic", false)
	current := newAppTheme(palette, model.PhaseShortBreak, false)
	if got := current.Color("primary", 0); got != theme.MustColor(palette.Break) {
		t.Errorf("primary = %v, want break accent", got)
	}
	if got := current.Color("foreground", 0); got != theme.MustColor(palette.Text) {
		t.Errorf("foreground = %v", got)
	}
}
