package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagDataDir  string
	flagStore    string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "pomodoro",
	Short: "Pomodoro focus timer",
	Long: `pomodoro - a focus timer cycling work and break phases.

  gui       desktop window with tray menu (default)
  tui       full-screen terminal timer
  settings  show or change persisted preferences
  themes    list colour themes`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         runGUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Directory holding the settings store (env POMODORO_DATA_DIR)")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "Settings backend: yaml, sqlite or memory (env POMODORO_STORE)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (env POMODORO_LOG_LEVEL)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
