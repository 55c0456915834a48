package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/settings"
	"pomodoro/internal/ui/theme"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	dimStyle    = lipgloss.NewStyle().Faint(true).Padding(0, 1)
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change persisted preferences",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print every setting",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Long: `Change one setting. Numbers are clamped to their range and
input that does not parse is rejected.

Keys: workMinutes, breakMinutes, longBreakMinutes, pomodorosBeforeLongBreak,
autoTransition, volume, theme, darkMode.`,
	Example: `  pomodoro settings set workMinutes 50
  pomodoro settings set volume 0.4
  pomodoro settings set theme nordic`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit settings in an interactive form",
	Args:  cobra.NoArgs,
	RunE:  runSettingsEdit,
}

var settingsResetCountCmd = &cobra.Command{
	Use:   "reset-count",
	Short: "Reset the completed pomodoro count to zero",
	Args:  cobra.NoArgs,
	RunE:  runSettingsResetCount,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd, settingsEditCmd, settingsResetCountCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	application, err := openApplication(os.Stderr)
	if err != nil {
		return err
	}
	defer application.Close()

	fmt.Fprintln(cmd.OutOrStdout(), renderSettings(application.store))
	return nil
}

func renderSettings(store *settings.Store) string {
	keys := append(append([]settings.Key(nil), settings.EditableKeys...), settings.KeyCompletedWorkPhases)
	rows := make([][]string, 0, len(keys))
	for _, key := range keys {
		text, err := store.Text(key)
		if err != nil {
			continue
		}
		rows = append(rows, []string{string(key), text})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("KEY", "VALUE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return dimStyle
			default:
				return cellStyle
			}
		}).
		String()
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	key, err := settings.ParseKey(args[0])
	if err != nil {
		return err
	}
	if key == settings.KeyMuted {
		return fmt.Errorf("muted follows volume; set volume to 0 instead")
	}

	application, err := openApplication(os.Stderr)
	if err != nil {
		return err
	}
	defer application.Close()

	if !application.store.SetText(key, args[1]) {
		return fmt.Errorf("invalid value %q for %s", args[1], key)
	}
	text, _ := application.store.Text(key)
	fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, text)
	return nil
}

func runSettingsResetCount(cmd *cobra.Command, args []string) error {
	application, err := openApplication(os.Stderr)
	if err != nil {
		return err
	}
	defer application.Close()

	application.store.ResetCompletedCount()
	fmt.Fprintln(cmd.OutOrStdout(), "completed count reset")
	return nil
}

func runSettingsEdit(cmd *cobra.Command, args []string) error {
	application, err := openApplication(os.Stderr)
	if err != nil {
		return err
	}
	defer application.Close()

	store := application.store
	values := store.Values()
	work := strconv.Itoa(values.WorkMinutes)
	short := strconv.Itoa(values.BreakMinutes)
	long := strconv.Itoa(values.LongBreakMinutes)
	cadence := strconv.Itoa(values.PomodorosBeforeLongBreak)
	volume := strconv.FormatFloat(values.Volume, 'f', -1, 64)
	auto := values.AutoTransition
	themeID := values.Theme
	dark := values.DarkMode

	themeOptions := make([]huh.Option[string], 0, len(theme.IDs()))
	for _, id := range theme.IDs() {
		themeOptions = append(themeOptions, huh.NewOption(theme.Name(id), id))
	}

	form := huh.NewForm(
		huh.NewGroup(
			minutesInput("Focus minutes", model.WorkMinutesRange, &work),
			minutesInput("Short break minutes", model.BreakMinutesRange, &short),
			minutesInput("Long break minutes", model.LongBreakMinutesRange, &long),
			minutesInput("Pomodoros before a long break", model.CadenceRange, &cadence),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Start the next phase automatically?").
				Value(&auto),
			huh.NewInput().
				Title("Volume (0 to 1, 0 mutes)").
				Value(&volume).
				Validate(validateVolume),
			huh.NewSelect[string]().
				Title("Theme").
				Options(themeOptions...).
				Value(&themeID),
			huh.NewConfirm().
				Title("Dark mode?").
				Value(&dark),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return fmt.Errorf("settings form: %w", err)
	}

	store.SetText(settings.KeyWorkMinutes, work)
	store.SetText(settings.KeyBreakMinutes, short)
	store.SetText(settings.KeyLongBreakMinutes, long)
	store.SetText(settings.KeyPomodorosBeforeLongBreak, cadence)
	store.SetText(settings.KeyVolume, volume)
	store.SetAutoTransition(auto)
	store.SetTheme(themeID)
	store.SetDarkMode(dark)

	fmt.Fprintln(cmd.OutOrStdout(), renderSettings(store))
	return nil
}

func minutesInput(title string, bounds model.Range, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Description(fmt.Sprintf("%d to %d", bounds.Min, bounds.Max)).
		Value(value).
		Validate(func(s string) error {
			if _, err := strconv.Atoi(s); err != nil {
				return fmt.Errorf("enter a whole number")
			}
			return nil
		})
}

func validateVolume(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || v > 1 {
		return fmt.Errorf("enter a number between 0 and 1")
	}
	return nil
}
