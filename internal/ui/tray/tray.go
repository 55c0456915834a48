package tray

import (
	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timer"
	"pomodoro/internal/ui/status"

	"fyne.io/fyne/v2"
)

// Host is the part of desktop.App the tray needs.
type Host interface {
	SetSystemTrayMenu(menu *fyne.Menu)
	SetSystemTrayIcon(icon fyne.Resource)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnToggle      func()
	OnReset       func()
	OnSwitch      func(model.Phase)
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	host       Host
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	toggleItem *fyne.MenuItem
	phaseItems map[model.Phase]*fyne.MenuItem
	menu       *fyne.Menu
}

// New creates a tray manager with the provided callbacks.
func New(host Host, callbacks Callbacks) *Manager {
	manager := &Manager{
		host:       host,
		callbacks:  callbacks,
		phaseItems: make(map[model.Phase]*fyne.MenuItem, len(model.Phases)),
	}

	manager.statusItem = fyne.NewMenuItem("Starting...", nil)
	manager.statusItem.Disabled = true

	manager.toggleItem = fyne.NewMenuItem("Start", func() {
		call(manager.callbacks.OnToggle)
	})

	reset := fyne.NewMenuItem("Reset", func() {
		call(manager.callbacks.OnReset)
	})

	phases := make([]*fyne.MenuItem, 0, len(model.Phases))
	for _, phase := range model.Phases {
		item := fyne.NewMenuItem(phase.Label(), func() {
			if manager.callbacks.OnSwitch != nil {
				manager.callbacks.OnSwitch(phase)
			}
		})
		manager.phaseItems[phase] = item
		phases = append(phases, item)
	}
	switchItem := fyne.NewMenuItem("Switch to", nil)
	switchItem.ChildMenu = fyne.NewMenu("", phases...)

	show := fyne.NewMenuItem("Show timer", func() {
		call(manager.callbacks.OnShow)
	})
	preferences := fyne.NewMenuItem("Preferences", func() {
		call(manager.callbacks.OnPreferences)
	})
	quit := fyne.NewMenuItem("Quit", func() {
		call(manager.callbacks.OnQuit)
	})
	quit.IsQuit = true

	manager.menu = fyne.NewMenu("Pomodoro",
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		manager.toggleItem,
		reset,
		switchItem,
		fyne.NewMenuItemSeparator(),
		show,
		preferences,
		quit,
	)
	manager.refreshMenu()

	return manager
}

// SetState mirrors snapshot in the menu.
func (manager *Manager) SetState(snapshot timer.Snapshot) {
	manager.statusItem.Label = status.Line(snapshot)
	if snapshot.Running {
		manager.toggleItem.Label = "Pause"
	} else {
		manager.toggleItem.Label = "Start"
	}
	for phase, item := range manager.phaseItems {
		item.Checked = phase == snapshot.Phase
	}
	manager.refreshMenu()
}

// SetIcon replaces the tray icon.
func (manager *Manager) SetIcon(icon fyne.Resource) {
	if manager.host != nil && icon != nil {
		manager.host.SetSystemTrayIcon(icon)
	}
}

func (manager *Manager) refreshMenu() {
	if manager.host != nil {
		manager.host.SetSystemTrayMenu(manager.menu)
	}
}

func call(handler func()) {
	if handler != nil {
		handler()
	}
}
