package model

// Range is an inclusive integer bound for a setting.
type Range struct {
	Min int
	Max int
}

// Clamp forces value into the range.
func (bounds Range) Clamp(value int) int {
	if value < bounds.Min {
		return bounds.Min
	}
	if value > bounds.Max {
		return bounds.Max
	}
	return value
}

// Contains reports whether value lies within the range.
func (bounds Range) Contains(value int) bool {
	return value >= bounds.Min && value <= bounds.Max
}

var (
	WorkMinutesRange      = Range{Min: 1, Max: 180}
	BreakMinutesRange     = Range{Min: 1, Max: 60}
	LongBreakMinutesRange = Range{Min: 1, Max: 120}
	CadenceRange          = Range{Min: 1, Max: 12}
)

const (
	DefaultWorkMinutes      = 25
	DefaultBreakMinutes     = 5
	DefaultLongBreakMinutes = 15
	DefaultCadence          = 4
	DefaultVolume           = 1.0
	DefaultTheme            = "classic"
)

// MinutesRange returns the allowed duration range for a phase.
func MinutesRange(phase Phase) Range {
	switch phase {
	case PhaseShortBreak:
		return BreakMinutesRange
	case PhaseLongBreak:
		return LongBreakMinutesRange
	default:
		return WorkMinutesRange
	}
}

// Durations holds the configured length of each phase in minutes.
type Durations struct {
	Work      int
	Break     int
	LongBreak int
}

// Minutes returns the configured minutes for phase.
func (durations Durations) Minutes(phase Phase) int {
	switch phase {
	case PhaseShortBreak:
		return durations.Break
	case PhaseLongBreak:
		return durations.LongBreak
	default:
		return durations.Work
	}
}

// Seconds returns the configured length of phase in seconds.
func (durations Durations) Seconds(phase Phase) int {
	return durations.Minutes(phase) * 60
}
