package timer

import "testing"

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{1500, "25:00"},
		{0, "00:00"},
		{59, "00:59"},
		{61, "01:01"},
		{-5, "00:00"},
		{6000, "100:00"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.seconds); got != tt.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		input  string
		want   int
		wantOK bool
	}{
		{"10:00", 600, true},
		{"1000", 600, true},
		{"5", 5, true},
		{"130", 90, true},
		{"0099", 99, true},
		{"1:2:3:4:5", 23*60 + 45, true},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseClock(tt.input)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseClock(%q) = %d, %v; want %d, %v", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name     string
		snapshot Snapshot
		want     float64
	}{
		{"full", Snapshot{Remaining: 1500, Duration: 1500}, 1},
		{"half", Snapshot{Remaining: 150, Duration: 300}, 0.5},
		{"edited above duration", Snapshot{Remaining: 2000, Duration: 1500}, 1},
		{"zero duration", Snapshot{Remaining: 10}, 0},
	}
	for _, tt := range tests {
		if got := Progress(tt.snapshot); got != tt.want {
			t.Errorf("%s: Progress = %v, want %v", tt.name, got, tt.want)
		}
	}
}
