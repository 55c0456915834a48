package timer

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatClock renders seconds as MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// ParseClock reads typed timer input. Non-digits are dropped, the last four
// digits are read as MMSS and the result is MM*60+SS.
func ParseClock(input string) (int, bool) {
	var digits strings.Builder
	for _, r := range input {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	value := digits.String()
	if value == "" {
		return 0, false
	}
	if len(value) > 4 {
		value = value[len(value)-4:]
	}
	value = strings.Repeat("0", 4-len(value)) + value

	minutes, _ := strconv.Atoi(value[:2])
	seconds, _ := strconv.Atoi(value[2:])
	return minutes*60 + seconds, true
}

// Progress returns the remaining fraction of the current phase in [0,1].
func Progress(snapshot Snapshot) float64 {
	if snapshot.Duration <= 0 {
		return 0
	}
	fraction := float64(snapshot.Remaining) / float64(snapshot.Duration)
	if fraction < 0 {
		return 0
	}
	if fraction > 1 {
		return 1
	}
	return fraction
}
