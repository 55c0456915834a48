package model

import "fmt"

// Phase identifies one of the three timer modes.
type Phase string

const (
	PhaseWork       Phase = "work"
	PhaseShortBreak Phase = "short_break"
	PhaseLongBreak  Phase = "long_break"
)

// Phases lists every phase in display order.
var Phases = []Phase{PhaseWork, PhaseShortBreak, PhaseLongBreak}

func (phase Phase) String() string {
	return string(phase)
}

// Label returns the human readable name of the phase.
func (phase Phase) Label() string {
	switch phase {
	case PhaseWork:
		return "Focus"
	case PhaseShortBreak:
		return "Short Break"
	case PhaseLongBreak:
		return "Long Break"
	default:
		return "Unknown"
	}
}

// IsBreak reports whether the phase is a short or long break.
func (phase Phase) IsBreak() bool {
	return phase == PhaseShortBreak || phase == PhaseLongBreak
}

// Valid reports whether phase is one of the known phases.
func (phase Phase) Valid() bool {
	switch phase {
	case PhaseWork, PhaseShortBreak, PhaseLongBreak:
		return true
	}
	return false
}

// ParsePhase accepts the canonical names plus a few short aliases.
func ParsePhase(value string) (Phase, error) {
	switch value {
	case "work", "focus", "pomodoro":
		return PhaseWork, nil
	case "short_break", "short", "break":
		return PhaseShortBreak, nil
	case "long_break", "long", "longBreak":
		return PhaseLongBreak, nil
	}
	return "", fmt.Errorf("unknown phase %q", value)
}
