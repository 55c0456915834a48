package window

import (
	"fmt"
	"image/color"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/settings"
	"pomodoro/internal/core/timer"
	"pomodoro/internal/ui/status"
	"pomodoro/internal/ui/theme"
	"pomodoro/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	fynetheme "fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Callbacks defines actions the window delegates to the application.
type Callbacks struct {
	OnPreferences func()
	// OnClose runs instead of quitting when the window is closed.
	OnClose func()
}

// Window shows the countdown and issues timer commands.
type Window struct {
	app       fyne.App
	window    fyne.Window
	engine    *timer.Engine
	store     *settings.Store
	callbacks Callbacks

	clockLabel   *canvas.Text
	clockEntry   *clockEntry
	progress     *widget.ProgressBar
	sessionLabel *widget.Label
	noticeLabel  *widget.Label
	phaseButtons map[model.Phase]*widget.Button
	startButton  *widget.Button
	resetButton  *widget.Button
	editButton   *widget.Button
	volume       *widget.Slider
	volumeLabel  *widget.Label
	themeSelect  *widget.Select
	darkCheck    *widget.Check

	snapshot   timer.Snapshot
	editing    bool
	syncing    bool
	appliedKey string
}

const clockTextSize = 72

// New builds the main window for engine and store.
func New(app fyne.App, engine *timer.Engine, store *settings.Store, callbacks Callbacks) *Window {
	view := &Window{
		app:          app,
		window:       app.NewWindow("Pomodoro"),
		engine:       engine,
		store:        store,
		callbacks:    callbacks,
		phaseButtons: make(map[model.Phase]*widget.Button, len(model.Phases)),
	}

	view.clockLabel = canvas.NewText(timer.FormatClock(0), color.Black)
	view.clockLabel.Alignment = fyne.TextAlignCenter
	view.clockLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	view.clockLabel.TextSize = clockTextSize
	// The clock font needs the app theme in place before the first layout.
	view.applyPalette(engine.Snapshot().Phase)

	view.clockEntry = newClockEntry()
	view.clockEntry.onCommit = view.commitEdit
	view.clockEntry.onCancel = view.endEdit
	view.clockEntry.Hide()

	view.progress = widget.NewProgressBar()
	view.progress.TextFormatter = func() string { return "" }

	view.sessionLabel = widget.NewLabel("")
	view.sessionLabel.Alignment = fyne.TextAlignCenter
	view.noticeLabel = widget.NewLabel("")
	view.noticeLabel.Alignment = fyne.TextAlignCenter

	phaseRow := container.NewGridWithColumns(len(model.Phases))
	for _, phase := range model.Phases {
		button := widget.NewButton(phase.Label(), func() {
			view.endEdit()
			engine.SwitchPhase(phase)
		})
		view.phaseButtons[phase] = button
		phaseRow.Add(button)
	}

	view.startButton = widget.NewButtonWithIcon("Start", fynetheme.MediaPlayIcon(), engine.Toggle)
	view.startButton.Importance = widget.HighImportance
	view.resetButton = widget.NewButtonWithIcon("Reset", fynetheme.MediaReplayIcon(), func() {
		view.endEdit()
		engine.Reset()
	})
	view.editButton = widget.NewButtonWithIcon("", fynetheme.DocumentCreateIcon(), view.beginEdit)
	controls := container.NewHBox(layout.NewSpacer(), view.startButton, view.resetButton, view.editButton, layout.NewSpacer())

	view.volumeLabel = widget.NewLabel("")
	view.volume = widget.NewSlider(0, 1)
	view.volume.Step = 0.01
	view.volume.OnChanged = func(value float64) {
		if !view.syncing {
			store.SetVolume(value)
		}
		view.renderVolume(value)
	}

	themeNames := make([]string, 0, len(theme.IDs()))
	themeByName := make(map[string]string, len(theme.IDs()))
	for _, id := range theme.IDs() {
		themeNames = append(themeNames, theme.Name(id))
		themeByName[theme.Name(id)] = id
	}
	view.themeSelect = widget.NewSelect(themeNames, func(name string) {
		if view.syncing {
			return
		}
		if id, ok := themeByName[name]; ok {
			store.SetTheme(id)
			view.applyPalette(view.snapshot.Phase)
		}
	})
	view.darkCheck = widget.NewCheck("Dark", func(enabled bool) {
		if view.syncing {
			return
		}
		store.SetDarkMode(enabled)
		view.applyPalette(view.snapshot.Phase)
	})

	settingsButton := widget.NewButtonWithIcon("", fynetheme.SettingsIcon(), func() {
		if view.callbacks.OnPreferences != nil {
			view.callbacks.OnPreferences()
		}
	})

	clock := container.NewStack(view.clockLabel, container.NewCenter(view.clockEntry))
	footer := container.NewBorder(nil, nil, view.volumeLabel, container.NewHBox(view.themeSelect, view.darkCheck, settingsButton), view.volume)
	content := container.NewVBox(
		phaseRow,
		layout.NewSpacer(),
		clock,
		view.progress,
		view.sessionLabel,
		view.noticeLabel,
		controls,
		layout.NewSpacer(),
		widget.NewSeparator(),
		footer,
	)
	view.window.SetContent(container.NewPadded(content))
	view.window.Resize(fyne.NewSize(520, 420))

	view.window.Canvas().SetOnTypedKey(view.handleKey)
	if callbacks.OnClose != nil {
		view.window.SetCloseIntercept(callbacks.OnClose)
	}

	view.syncControls()
	view.render(engine.Snapshot())
	return view
}

// Show displays the window.
func (view *Window) Show() {
	view.window.Show()
	view.window.RequestFocus()
}

// Hide hides the window.
func (view *Window) Hide() {
	view.window.Hide()
}

// Update renders snapshot from any goroutine.
func (view *Window) Update(snapshot timer.Snapshot) {
	fyne.Do(func() {
		view.render(snapshot)
	})
}

// Announce shows a completion notice from any goroutine.
func (view *Window) Announce(finished model.Phase, snapshot timer.Snapshot) {
	fyne.Do(func() {
		view.noticeLabel.SetText(status.Completion(finished, snapshot.Phase))
		view.render(snapshot)
		view.window.RequestFocus()
	})
}

// Reload re-reads settings after they were changed elsewhere.
func (view *Window) Reload() {
	fyne.Do(func() {
		view.syncControls()
		view.render(view.engine.Snapshot())
	})
}

func (view *Window) render(snapshot timer.Snapshot) {
	view.snapshot = snapshot
	if !view.editing {
		view.clockLabel.Text = timer.FormatClock(snapshot.Remaining)
		view.clockLabel.Refresh()
	}
	view.progress.SetValue(timer.Progress(snapshot))
	view.sessionLabel.SetText(status.Session(snapshot, view.store.PomodorosBeforeLongBreak()))
	if snapshot.Running {
		view.noticeLabel.SetText("")
	}

	if snapshot.Running {
		view.startButton.SetText("Pause")
		view.startButton.SetIcon(fynetheme.MediaPauseIcon())
		view.editButton.Disable()
	} else {
		view.startButton.SetText("Start")
		view.startButton.SetIcon(fynetheme.MediaPlayIcon())
		view.editButton.Enable()
	}

	for phase, button := range view.phaseButtons {
		importance := widget.LowImportance
		if phase == snapshot.Phase {
			importance = widget.HighImportance
		}
		if button.Importance != importance {
			button.Importance = importance
			button.Refresh()
		}
	}

	view.window.SetTitle(fmt.Sprintf("%s %s", timer.FormatClock(snapshot.Remaining), snapshot.Phase.Label()))
	view.applyPalette(snapshot.Phase)
}

// applyPalette swaps the app theme when the palette or phase changed.
func (view *Window) applyPalette(phase model.Phase) {
	themeID, dark := view.store.Theme(), view.store.DarkMode()
	key := fmt.Sprintf("%s/%t/%s", themeID, dark, phase)
	if key == view.appliedKey {
		return
	}
	view.appliedKey = key

	palette := theme.Lookup(themeID, dark)
	view.clockLabel.Color = theme.MustColor(palette.Accent(phase))
	view.clockLabel.Refresh()
	view.app.Settings().SetTheme(newAppTheme(palette, phase, dark))
	if icon, err := resources.Icon(theme.MustColor(palette.Accent(phase))); err == nil {
		view.window.SetIcon(icon)
	}
}

func (view *Window) syncControls() {
	values := view.store.Values()
	view.syncing = true
	defer func() { view.syncing = false }()

	view.volume.SetValue(values.Volume)
	view.renderVolume(values.Volume)
	view.themeSelect.SetSelected(theme.Name(values.Theme))
	view.darkCheck.SetChecked(values.DarkMode)
	view.appliedKey = ""
}

func (view *Window) renderVolume(volume float64) {
	if volume == 0 {
		view.volumeLabel.SetText("Muted")
		return
	}
	view.volumeLabel.SetText(fmt.Sprintf("%3.0f%%", volume*100))
}

func (view *Window) handleKey(event *fyne.KeyEvent) {
	if view.editing {
		return
	}
	switch event.Name {
	case fyne.KeySpace:
		view.engine.Toggle()
	case fyne.KeyR:
		view.engine.Reset()
	case fyne.KeyE:
		view.beginEdit()
	}
}

func (view *Window) beginEdit() {
	if view.editing || view.engine.Snapshot().Running {
		return
	}
	view.editing = true
	view.clockLabel.Text = ""
	view.clockLabel.Refresh()
	view.clockEntry.begin()
	view.clockEntry.Show()
	view.window.Canvas().Focus(view.clockEntry)
}

func (view *Window) commitEdit(text string) {
	if seconds, ok := timer.ParseClock(text); ok {
		view.engine.EditRemaining(seconds)
	}
	view.endEdit()
}

func (view *Window) endEdit() {
	if !view.editing {
		return
	}
	view.editing = false
	view.clockEntry.active = false
	view.clockEntry.Hide()
	view.render(view.engine.Snapshot())
}
