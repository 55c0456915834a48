package tui

import (
	"fmt"

	"pomodoro/internal/core/model"
	"pomodoro/internal/ui/theme"

	"github.com/charmbracelet/lipgloss"
)

// styles derived from the active palette and phase
type styles struct {
	accent    lipgloss.Color
	activeTab lipgloss.Style
	tab       lipgloss.Style
	clock     lipgloss.Style
	session   lipgloss.Style
	notice    lipgloss.Style
	status    lipgloss.Style
	frame     lipgloss.Style
}

func newStyles(themeID string, dark bool, phase model.Phase) styles {
	palette := theme.Lookup(themeID, dark)
	accent := hexColor(palette.Accent(phase))
	text := hexColor(palette.Text)
	muted := lipgloss.Color("#828997")

	return styles{
		accent: accent,
		activeTab: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			Underline(true).
			Padding(0, 1),
		tab: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),
		clock: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			Padding(1, 0),
		session: lipgloss.NewStyle().
			Foreground(text),
		notice: lipgloss.NewStyle().
			Foreground(accent).
			Italic(true),
		status: lipgloss.NewStyle().
			Foreground(muted),
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 3),
	}
}

// hexColor drops alpha so translucent palette entries render in a terminal.
func hexColor(value string) lipgloss.Color {
	parsed, err := theme.ParseColor(value)
	if err != nil {
		return lipgloss.Color("#ABB2BF")
	}
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", parsed.R, parsed.G, parsed.B))
}
