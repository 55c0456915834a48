package main

import (
	"os"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/settings"
	"pomodoro/internal/core/timer"
	"pomodoro/internal/ui/preferences"
	"pomodoro/internal/ui/status"
	"pomodoro/internal/ui/theme"
	"pomodoro/internal/ui/tray"
	"pomodoro/internal/ui/window"
	"pomodoro/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/spf13/cobra"
)

const appID = "io.github.pomodoro"

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Open the desktop timer (default)",
	Args:  cobra.NoArgs,
	RunE:  runGUI,
}

func init() {
	rootCmd.AddCommand(guiCmd)
}

func runGUI(cmd *cobra.Command, args []string) error {
	application, err := openApplication(os.Stderr)
	if err != nil {
		return err
	}
	defer application.Close()

	engine := application.newEngine()
	defer engine.Close()
	store := application.store

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(phaseIcon(store, model.PhaseWork))

	var prefsWindow *preferences.Window
	desktopApp, hasTray := fyneApp.(desktop.App)

	var mainWindow *window.Window
	callbacks := window.Callbacks{
		OnPreferences: func() {
			prefsWindow.Show()
		},
	}
	if hasTray {
		callbacks.OnClose = func() {
			mainWindow.Hide()
		}
	}
	mainWindow = window.New(fyneApp, engine, store, callbacks)
	prefsWindow = preferences.New(fyneApp, store, mainWindow.Reload)

	var trayManager *tray.Manager
	if hasTray {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow:        mainWindow.Show,
			OnToggle:      engine.Toggle,
			OnReset:       engine.Reset,
			OnSwitch:      engine.SwitchPhase,
			OnPreferences: prefsWindow.Show,
			OnQuit:        fyneApp.Quit,
		})
		trayManager.SetState(engine.Snapshot())
		trayManager.SetIcon(phaseIcon(store, model.PhaseWork))
	} else {
		application.logger.Info("system tray unsupported on this platform")
	}

	events := engine.Subscribe(16)
	go func() {
		phase := model.PhaseWork
		for event := range events {
			handleEvent(event, mainWindow, trayManager, store, &phase)
		}
	}()

	mainWindow.Show()
	fyneApp.Run()
	return nil
}

func handleEvent(event timer.Event, mainWindow *window.Window, trayManager *tray.Manager, store *settings.Store, phase *model.Phase) {
	snapshot := event.Snapshot
	switch event.Type {
	case timer.EventPhaseComplete:
		mainWindow.Announce(event.Finished, snapshot)
		fyne.CurrentApp().SendNotification(fyne.NewNotification("Pomodoro", status.Completion(event.Finished, snapshot.Phase)))
	default:
		mainWindow.Update(snapshot)
	}

	if trayManager == nil {
		return
	}
	phaseChanged := snapshot.Phase != *phase
	*phase = snapshot.Phase
	fyne.Do(func() {
		trayManager.SetState(snapshot)
		if phaseChanged {
			trayManager.SetIcon(phaseIcon(store, snapshot.Phase))
		}
	})
}

func phaseIcon(store *settings.Store, phase model.Phase) fyne.Resource {
	palette := theme.Lookup(store.Theme(), store.DarkMode())
	return resources.MustIcon(theme.MustColor(palette.Accent(phase)))
}
