package preferences

import (
	"fmt"

	"pomodoro/internal/core/settings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize/english"
)

// Window handles the preferences UI.
type Window struct {
	window     fyne.Window
	store      *settings.Store
	onSave     func()
	entries    map[settings.Key]*widget.Entry
	autoCheck  *widget.Check
	countLabel *widget.Label
}

// New creates a preferences window. onSave runs after edits are applied.
func New(app fyne.App, store *settings.Store, onSave func()) *Window {
	window := app.NewWindow("Pomodoro Settings")

	prefs := &Window{
		window:  window,
		store:   store,
		onSave:  onSave,
		entries: make(map[settings.Key]*widget.Entry, len(fields)),
	}

	form := widget.NewForm()
	for _, f := range fields {
		entry := widget.NewEntry()
		entry.SetPlaceHolder(fmt.Sprintf("%d-%d", f.bounds.Min, f.bounds.Max))
		prefs.entries[f.key] = entry
		form.Append(f.label, container.NewBorder(nil, nil, nil, widget.NewLabel(f.unit), entry))
	}

	prefs.autoCheck = widget.NewCheck("Start the next phase automatically", nil)
	prefs.countLabel = widget.NewLabel("")
	resetCount := widget.NewButton("Reset count", func() {
		store.ResetCompletedCount()
		prefs.refreshCount()
		if prefs.onSave != nil {
			prefs.onSave()
		}
	})

	body := container.NewVBox(
		widget.NewLabelWithStyle("Timer", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		form,
		prefs.autoCheck,
		widget.NewSeparator(),
		container.NewHBox(prefs.countLabel, layout.NewSpacer(), resetCount),
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	saveButton.Importance = widget.HighImportance
	cancelButton := widget.NewButton("Cancel", window.Hide)
	buttons := container.NewHBox(layout.NewSpacer(), cancelButton, saveButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, body))
	window.SetCloseIntercept(window.Hide)
	window.Resize(fyne.NewSize(380, 320))

	prefs.load()
	return prefs
}

// Show displays the preferences window with current values.
func (prefs *Window) Show() {
	prefs.load()
	prefs.window.Show()
	prefs.window.RequestFocus()
}

func (prefs *Window) load() {
	for key, entry := range prefs.entries {
		if text, err := prefs.store.Text(key); err == nil {
			entry.SetText(text)
		}
	}
	prefs.autoCheck.SetChecked(prefs.store.AutoTransition())
	prefs.refreshCount()
}

func (prefs *Window) refreshCount() {
	prefs.countLabel.SetText(english.Plural(prefs.store.CompletedWorkPhases(), "pomodoro", "pomodoros") + " completed")
}

// handleSave applies each entry; rejected input keeps the stored value.
func (prefs *Window) handleSave() {
	for _, f := range fields {
		prefs.store.SetText(f.key, prefs.entries[f.key].Text)
	}
	prefs.store.SetAutoTransition(prefs.autoCheck.Checked)

	prefs.load()
	if prefs.onSave != nil {
		prefs.onSave()
	}
	prefs.window.Hide()
}
