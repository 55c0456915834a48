package tray

import (
	"testing"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timer"

	"fyne.io/fyne/v2"
)

type fakeHost struct {
	menu  *fyne.Menu
	menus int
	icon  fyne.Resource
}

func (host *fakeHost) SetSystemTrayMenu(menu *fyne.Menu) {
	host.menu = menu
	host.menus++
}

func (host *fakeHost) SetSystemTrayIcon(icon fyne.Resource) {
	host.icon = icon
}

func findItem(menu *fyne.Menu, label string) *fyne.MenuItem {
	for _, item := range menu.Items {
		if item.Label == label {
			return item
		}
		if item.ChildMenu != nil {
			if found := findItem(item.ChildMenu, label); found != nil {
				return found
			}
		}
	}
	return nil
}

func TestManagerSetState(t *testing.T) {
	host := &fakeHost{}
	manager := New(host, Callbacks{})
	if host.menu == nil {
		t.Fatal("New should install the menu")
	}

	manager.SetState(timer.Snapshot{Phase: model.PhaseShortBreak, Remaining: 299, Running: true})
	if got := manager.statusItem.Label; got != "Short Break 04:59" {
		t.Errorf("status = %q", got)
	}
	if manager.toggleItem.Label != "Pause" {
		t.Errorf("toggle = %q, want Pause", manager.toggleItem.Label)
	}
	if !manager.phaseItems[model.PhaseShortBreak].Checked || manager.phaseItems[model.PhaseWork].Checked {
		t.Error("only the current phase should be checked")
	}

	manager.SetState(timer.Snapshot{Phase: model.PhaseShortBreak, Remaining: 299})
	if manager.toggleItem.Label != "Start" {
		t.Errorf("toggle = %q, want Start", manager.toggleItem.Label)
	}
	if host.menus != 3 {
		t.Errorf("menu installs = %d, want 3", host.menus)
	}
}

func TestManagerCallbacks(t *testing.T) {
	host := &fakeHost{}
	var toggles, resets int
	var switched model.Phase
	New(host, Callbacks{
		OnToggle: func() { toggles++ },
		OnReset:  func() { resets++ },
		OnSwitch: func(phase model.Phase) { switched = phase },
	})

	findItem(host.menu, "Start").Action()
	findItem(host.menu, "Reset").Action()
	findItem(host.menu, "Long Break").Action()
	findItem(host.menu, "Preferences").Action()

	if toggles != 1 || resets != 1 || switched != model.PhaseLongBreak {
		t.Errorf("toggles=%d resets=%d switched=%q", toggles, resets, switched)
	}
}

func TestManagerSetIcon(t *testing.T) {
	host := &fakeHost{}
	manager := New(host, Callbacks{})
	icon := fyne.NewStaticResource("icon.png", []byte{1})
	manager.SetIcon(icon)
	if host.icon != icon {
		t.Error("icon not forwarded")
	}
}
