package timer

import (
	"time"

	"pomodoro/internal/core/model"
)

// EventType defines the type of engine event.
type EventType string

const (
	EventTick          EventType = "tick"
	EventStateChange   EventType = "state_change"
	EventPhaseComplete EventType = "phase_complete"
)

// Command names the operation behind a state change.
type Command string

const (
	CommandStart  Command = "start"
	CommandPause  Command = "pause"
	CommandReset  Command = "reset"
	CommandSwitch Command = "switch"
	CommandEdit   Command = "edit"
	CommandResume Command = "resume"
)

// Snapshot is a read-only copy of the countdown state.
type Snapshot struct {
	Phase         model.Phase
	Remaining     int
	Running       bool
	Completed     int
	ResumePending bool
	// Duration is the configured length of Phase in seconds.
	Duration int
}

// Event represents an engine update for observers.
type Event struct {
	Type     EventType
	Command  Command
	Finished model.Phase
	Snapshot Snapshot
	At       time.Time
}
