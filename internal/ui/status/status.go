// Package status renders timer state as short human-readable text.
package status

import (
	"fmt"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timer"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
)

// Line summarises a snapshot, e.g. "Focus 24:59" or "Short Break 05:00 (paused)".
func Line(snapshot timer.Snapshot) string {
	line := fmt.Sprintf("%s %s", snapshot.Phase.Label(), timer.FormatClock(snapshot.Remaining))
	switch {
	case snapshot.Running:
		return line
	case snapshot.ResumePending:
		return line + " (starting)"
	default:
		return line + " (paused)"
	}
}

// Session describes progress through the long-break cadence.
func Session(snapshot timer.Snapshot, cadence int) string {
	if cadence < 1 {
		cadence = 1
	}
	completed := snapshot.Completed
	if snapshot.Phase != model.PhaseWork {
		return english.Plural(completed, "pomodoro", "pomodoros") + " completed"
	}

	untilLong := cadence - completed%cadence
	text := humanize.Ordinal(completed+1) + " pomodoro"
	if untilLong == 1 {
		return text + ", long break next"
	}
	return fmt.Sprintf("%s, long break in %d", text, untilLong)
}

// Completion announces the end of finished, e.g. "Focus finished. Time for a Short Break."
func Completion(finished, next model.Phase) string {
	return fmt.Sprintf("%s finished. Time for a %s.", finished.Label(), next.Label())
}
