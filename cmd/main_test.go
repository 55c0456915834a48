package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"pomodoro/internal/core/settings"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("POMODORO_SINGLE_INSTANCE", "false")
	flagDataDir, flagStore, flagLogLevel = "", "", ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSettingsSetAndShow(t *testing.T) {
	dir := t.TempDir()
	for _, backend := range []string{"yaml", "sqlite"} {
		t.Run(backend, func(t *testing.T) {
			out, err := execute(t, "settings", "set", "workMinutes", "500", "--data-dir", dir+"/"+backend, "--store", backend)
			if err != nil {
				t.Fatalf("set error = %v", err)
			}
			if !strings.Contains(out, "workMinutes = 180") {
				t.Errorf("set output = %q, want clamped 180", out)
			}

			out, err = execute(t, "settings", "show", "--data-dir", dir+"/"+backend, "--store", backend)
			if err != nil {
				t.Fatalf("show error = %v", err)
			}
			for _, want := range []string{"workMinutes", "180", "breakMinutes", "completedWorkPhases"} {
				if !strings.Contains(out, want) {
					t.Errorf("show output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestSettingsSetRejects(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
		want error
	}{
		{name: "unknown key", args: []string{"settings", "set", "opacity", "1"}, want: settings.ErrUnknownKey},
		{name: "non numeric", args: []string{"settings", "set", "breakMinutes", "five"}},
		{name: "muted", args: []string{"settings", "set", "muted", "true"}},
		{name: "unknown theme", args: []string{"settings", "set", "theme", "neon"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, append(tt.args, "--data-dir", dir)...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSettingsResetCount(t *testing.T) {
	out, err := execute(t, "settings", "reset-count", "--data-dir", t.TempDir())
	if err != nil {
		t.Fatalf("reset-count error = %v", err)
	}
	if !strings.Contains(out, "reset") {
		t.Errorf("output = %q", out)
	}
}

func TestThemesListsEveryPreset(t *testing.T) {
	out, err := execute(t, "themes")
	if err != nil {
		t.Fatalf("themes error = %v", err)
	}
	for _, id := range []string{"classic", "forest", "ocean", "sunset", "minimal", "purple", "nordic", "warm"} {
		if !strings.Contains(out, id) {
			t.Errorf("themes output missing %q", id)
		}
	}
}

func TestInvalidStoreFlag(t *testing.T) {
	_, err := execute(t, "settings", "show", "--data-dir", t.TempDir(), "--store", "redis")
	if err == nil {
		t.Fatal("expected an error for an unknown store")
	}
}
