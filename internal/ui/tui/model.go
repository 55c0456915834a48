// Package tui renders the timer in a terminal with bubbletea.
package tui

import (
	"fmt"
	"math"
	"strings"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/settings"
	"pomodoro/internal/core/timer"
	"pomodoro/internal/ui/status"
	"pomodoro/internal/ui/theme"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	volumeStep       = 0.1
	maxProgressWidth = 48
)

// Messages

type engineEventMsg struct {
	event timer.Event
}

type eventsClosedMsg struct{}

// Model is the bubbletea model for the timer screen.
type Model struct {
	engine *timer.Engine
	store  *settings.Store
	events <-chan timer.Event

	keys     KeyMap
	help     help.Model
	progress progress.Model
	input    textinput.Model

	snapshot timer.Snapshot
	editing  bool
	notice   string
	width    int
}

// New creates the model. events should come from engine.Subscribe.
func New(engine *timer.Engine, store *settings.Store, events <-chan timer.Event) Model {
	input := textinput.New()
	input.Placeholder = "MM:SS"
	input.CharLimit = 8
	input.Width = 8
	input.Prompt = ""

	return Model{
		engine:   engine,
		store:    store,
		events:   events,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		progress: progress.New(progress.WithSolidFill("#10B981"), progress.WithoutPercentage(), progress.WithWidth(maxProgressWidth)),
		input:    input,
		snapshot: engine.Snapshot(),
	}
}

// Run starts a full-screen program and blocks until the user quits.
func Run(engine *timer.Engine, store *settings.Store) error {
	events := engine.Subscribe(16)
	_, err := tea.NewProgram(New(engine, store, events), tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}

func waitForEvent(events <-chan timer.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return engineEventMsg{event: event}
	}
}

func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.progress.Width = min(maxProgressWidth, max(10, msg.Width-10))
		return m, nil

	case engineEventMsg:
		m.snapshot = msg.event.Snapshot
		switch {
		case msg.event.Type == timer.EventPhaseComplete:
			m.notice = status.Completion(msg.event.Finished, msg.event.Snapshot.Phase)
		case msg.event.Snapshot.Running:
			m.notice = ""
		}
		return m, waitForEvent(m.events)

	case eventsClosedMsg:
		return m, tea.Quit

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		m.engine.Toggle()
	case key.Matches(msg, m.keys.Reset):
		m.engine.Reset()
	case key.Matches(msg, m.keys.Work):
		m.engine.SwitchPhase(model.PhaseWork)
	case key.Matches(msg, m.keys.Short):
		m.engine.SwitchPhase(model.PhaseShortBreak)
	case key.Matches(msg, m.keys.Long):
		m.engine.SwitchPhase(model.PhaseLongBreak)
	case key.Matches(msg, m.keys.Edit):
		if m.engine.Snapshot().Running {
			m.notice = "Pause the timer to edit it."
			return m, nil
		}
		m.editing = true
		m.input.SetValue("")
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.VolumeUp):
		m.store.SetVolume(stepVolume(m.store.Volume(), volumeStep))
	case key.Matches(msg, m.keys.VolumeDown):
		m.store.SetVolume(stepVolume(m.store.Volume(), -volumeStep))
	case key.Matches(msg, m.keys.Auto):
		m.store.SetAutoTransition(!m.store.AutoTransition())
	case key.Matches(msg, m.keys.Theme):
		m.store.SetTheme(nextTheme(m.store.Theme()))
	case key.Matches(msg, m.keys.Dark):
		m.store.SetDarkMode(!m.store.DarkMode())
	case key.Matches(msg, m.keys.ClearCount):
		m.store.ResetCompletedCount()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	m.snapshot = m.engine.Snapshot()
	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Commit):
		if seconds, ok := timer.ParseClock(m.input.Value()); ok {
			m.engine.EditRemaining(seconds)
		}
		m.stopEditing()
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.stopEditing()
		return m, nil
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case msg.Type == tea.KeyRunes && !clockRunes(msg.Runes):
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) stopEditing() {
	m.editing = false
	m.input.Blur()
	m.input.SetValue("")
	m.snapshot = m.engine.Snapshot()
}

func (m Model) View() string {
	values := m.store.Values()
	st := newStyles(values.Theme, values.DarkMode, m.snapshot.Phase)

	tabs := make([]string, 0, len(model.Phases))
	for _, phase := range model.Phases {
		if phase == m.snapshot.Phase {
			tabs = append(tabs, st.activeTab.Render(phase.Label()))
		} else {
			tabs = append(tabs, st.tab.Render(phase.Label()))
		}
	}

	clock := timer.FormatClock(m.snapshot.Remaining)
	if m.editing {
		clock = m.input.View()
	}

	bar := m.progress
	bar.FullColor = string(st.accent)

	state := "paused"
	switch {
	case m.snapshot.Running:
		state = "running"
	case m.snapshot.ResumePending:
		state = "starting"
	}

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n")
	b.WriteString(st.clock.Render(clock))
	b.WriteString("\n")
	b.WriteString(bar.ViewAs(timer.Progress(m.snapshot)))
	b.WriteString("\n\n")
	b.WriteString(st.session.Render(status.Session(m.snapshot, values.PomodorosBeforeLongBreak)))
	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(st.notice.Render(m.notice))
	}
	b.WriteString("\n\n")
	b.WriteString(st.status.Render(fmt.Sprintf("%s · %s · auto %s · %s",
		state, volumeText(values.Volume), onOff(values.AutoTransition), themeText(values.Theme, values.DarkMode))))

	var helpView string
	if m.editing {
		helpView = m.help.View(editHelp{keys: m.keys})
	} else {
		helpView = m.help.View(m.keys)
	}

	return lipgloss.JoinVertical(lipgloss.Left, st.frame.Render(b.String()), helpView)
}

// stepVolume moves by delta and rounds to whole percent.
func stepVolume(volume, delta float64) float64 {
	return math.Round((volume+delta)*100) / 100
}

func nextTheme(current string) string {
	ids := theme.IDs()
	for i, id := range ids {
		if id == current {
			return ids[(i+1)%len(ids)]
		}
	}
	return ids[0]
}

func clockRunes(runes []rune) bool {
	for _, r := range runes {
		if (r < '0' || r > '9') && r != ':' {
			return false
		}
	}
	return true
}

func volumeText(volume float64) string {
	if volume == 0 {
		return "muted"
	}
	return fmt.Sprintf("vol %.0f%%", volume*100)
}

func themeText(id string, dark bool) string {
	if dark {
		return theme.Name(id) + " dark"
	}
	return theme.Name(id)
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}
