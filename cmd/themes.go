package main

import (
	"fmt"
	"strings"

	"pomodoro/internal/core/model"
	"pomodoro/internal/ui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List colour themes with their phase colours",
	Args:  cobra.NoArgs,
	RunE:  runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

func runThemes(cmd *cobra.Command, args []string) error {
	for _, id := range theme.IDs() {
		fmt.Fprintln(cmd.OutOrStdout(), themeLine(id))
	}
	return nil
}

func themeLine(id string) string {
	swatches := make([]string, 0, len(model.Phases)*2)
	for _, dark := range []bool{false, true} {
		palette := theme.Lookup(id, dark)
		for _, phase := range model.Phases {
			swatches = append(swatches, swatch(palette.Accent(phase)))
		}
	}
	return fmt.Sprintf("%-8s %-8s %s", id, theme.Name(id), strings.Join(swatches, ""))
}

func swatch(value string) string {
	c, err := theme.ParseColor(value)
	if err != nil {
		return "  "
	}
	hex := fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}
