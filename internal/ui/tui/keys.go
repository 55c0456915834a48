package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the timer screen
type KeyMap struct {
	// Timer
	Toggle key.Binding
	Reset  key.Binding
	Edit   key.Binding
	Work   key.Binding
	Short  key.Binding
	Long   key.Binding

	// Settings
	VolumeUp   key.Binding
	VolumeDown key.Binding
	Auto       key.Binding
	Theme      key.Binding
	Dark       key.Binding
	ClearCount key.Binding

	// Edit mode
	Commit key.Binding
	Cancel key.Binding

	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "start/pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit time"),
		),
		Work: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "focus"),
		),
		Short: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "short break"),
		),
		Long: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "long break"),
		),
		VolumeUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "volume up"),
		),
		VolumeDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "volume down"),
		),
		Auto: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "auto start"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "next theme"),
		),
		Dark: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "dark mode"),
		),
		ClearCount: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "reset count"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.Edit, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Reset, k.Edit},
		{k.Work, k.Short, k.Long},
		{k.VolumeUp, k.VolumeDown, k.Auto},
		{k.Theme, k.Dark, k.ClearCount},
		{k.Help, k.Quit},
	}
}

// editHelp is shown while the time input is focused.
type editHelp struct{ keys KeyMap }

func (h editHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.keys.Commit, h.keys.Cancel}
}

func (h editHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
