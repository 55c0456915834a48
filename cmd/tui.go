package main

import (
	"fmt"
	"os"
	"path/filepath"

	"pomodoro/internal/ui/tui"

	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the timer in the terminal",
	Long: `Run the timer full-screen in the terminal.

Logs go to pomodoro.log in the data directory so they do not
corrupt the screen.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	logFile, err := os.OpenFile(filepath.Join(cfg.DataDir, "pomodoro.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	application, err := openApplication(logFile)
	if err != nil {
		return err
	}
	defer application.Close()

	engine := application.newEngine()
	defer engine.Close()
	return tui.Run(engine, application.store)
}
