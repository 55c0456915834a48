package timer

import (
	"log/slog"
	"math"
	"sync"
	"time"

	"pomodoro/internal/core/model"
)

const (
	// DefaultResumeDelay is the pause between a completed phase and the
	// automatic start of the next one.
	DefaultResumeDelay = 1500 * time.Millisecond

	// EditThreshold is the largest manual edit, in seconds, that leaves the
	// configured phase length untouched.
	EditThreshold = 30
)

// Settings is the configuration the engine reads and the tally it updates.
type Settings interface {
	Seconds(phase model.Phase) int
	SetMinutes(phase model.Phase, n int)
	PomodorosBeforeLongBreak() int
	AutoTransition() bool
	Volume() float64
	Muted() bool
	CompletedWorkPhases() int
	RecordCompletion() int
}

// Player plays the completion sound. Implementations must not block.
type Player interface {
	Play(volume float64)
}

type silentPlayer struct{}

func (silentPlayer) Play(float64) {}

// Options contains runtime options for Engine.
type Options struct {
	TickInterval time.Duration
	ResumeDelay  time.Duration
	Scheduler    Scheduler
	Player       Player
	Logger       *slog.Logger
}

// Engine owns the countdown: current phase, remaining seconds and whether it runs.
type Engine struct {
	mu           sync.Mutex
	settings     Settings
	options      Options
	phase        model.Phase
	remaining    int
	running      bool
	epoch        uint64
	stopTicks    func()
	cancelResume func()
	events       []chan Event
	closed       bool
}

// New creates a paused engine in the work phase at full duration.
func New(settings Settings, options Options) *Engine {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.ResumeDelay <= 0 {
		options.ResumeDelay = DefaultResumeDelay
	}
	if options.Scheduler == nil {
		options.Scheduler = WallClock{}
	}
	if options.Player == nil {
		options.Player = silentPlayer{}
	}
	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	return &Engine{
		settings:  settings,
		options:   options,
		phase:     model.PhaseWork,
		remaining: settings.Seconds(model.PhaseWork),
	}
}

// Subscribe registers a new observer channel.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	engine.mu.Lock()
	if engine.closed {
		close(ch)
	} else {
		engine.events = append(engine.events, ch)
	}
	engine.mu.Unlock()
	return ch
}

// Snapshot returns the current countdown state.
func (engine *Engine) Snapshot() Snapshot {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.snapshotLocked()
}

// Start begins the countdown. It is a no-op while already running.
func (engine *Engine) Start() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.running || engine.closed {
		return
	}
	engine.cancelResumeLocked()
	engine.running = true
	engine.startTicksLocked()
	engine.options.Logger.Debug("timer started", "phase", engine.phase, "remaining", engine.remaining)
	engine.emitStateLocked(CommandStart)
}

// Pause halts the countdown and keeps the remaining time. A pending
// auto-resume is cancelled even when the countdown is already stopped.
func (engine *Engine) Pause() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if !engine.running && engine.cancelResume == nil {
		return
	}
	engine.haltLocked()
	engine.options.Logger.Debug("timer paused", "phase", engine.phase, "remaining", engine.remaining)
	engine.emitStateLocked(CommandPause)
}

// Toggle pauses a running countdown and starts a stopped one.
func (engine *Engine) Toggle() {
	if engine.Snapshot().Running {
		engine.Pause()
		return
	}
	engine.Start()
}

// Reset stops the countdown and refills the current phase from settings.
func (engine *Engine) Reset() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.haltLocked()
	engine.remaining = engine.settings.Seconds(engine.phase)
	engine.emitStateLocked(CommandReset)
}

// SwitchPhase abandons the current countdown and loads phase at full duration.
func (engine *Engine) SwitchPhase(phase model.Phase) {
	if !phase.Valid() {
		return
	}
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.haltLocked()
	engine.phase = phase
	engine.remaining = engine.settings.Seconds(phase)
	engine.options.Logger.Debug("phase switched", "phase", phase)
	engine.emitStateLocked(CommandSwitch)
}

// EditRemaining overrides the remaining time while stopped. An edit more than
// EditThreshold seconds away from the configured length also updates that
// length to the nearest minute. It reports false when the countdown is running.
func (engine *Engine) EditRemaining(seconds int) bool {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.running {
		return false
	}
	if seconds < 0 {
		seconds = 0
	}
	engine.cancelResumeLocked()
	engine.epoch++

	configured := engine.settings.Seconds(engine.phase)
	if delta := seconds - configured; delta > EditThreshold || delta < -EditThreshold {
		minutes := int(math.Round(float64(seconds) / 60))
		engine.settings.SetMinutes(engine.phase, minutes)
		engine.options.Logger.Info("phase length updated from edit", "phase", engine.phase, "minutes", minutes)
	}
	engine.remaining = seconds
	engine.emitStateLocked(CommandEdit)
	return true
}

// Tick advances the countdown by one second. It is a no-op while stopped.
func (engine *Engine) Tick() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.tickLocked()
}

// Close stops all scheduling and closes observer channels.
func (engine *Engine) Close() {
	engine.mu.Lock()
	if engine.closed {
		engine.mu.Unlock()
		return
	}
	engine.haltLocked()
	engine.closed = true
	events := engine.events
	engine.events = nil
	engine.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (engine *Engine) tickLocked() {
	if !engine.running {
		return
	}
	if engine.remaining <= 1 {
		engine.remaining = 0
		engine.completeLocked()
		return
	}
	engine.remaining--
	engine.emitLocked(Event{
		Type:     EventTick,
		Snapshot: engine.snapshotLocked(),
		At:       time.Now(),
	})
}

func (engine *Engine) completeLocked() {
	finished := engine.phase
	engine.stopTicksLocked()
	engine.running = false

	if !engine.settings.Muted() {
		engine.options.Player.Play(engine.settings.Volume())
	}

	next := model.PhaseWork
	if finished == model.PhaseWork {
		completed := engine.settings.RecordCompletion()
		cadence := engine.settings.PomodorosBeforeLongBreak()
		if cadence < 1 {
			cadence = 1
		}
		next = model.PhaseShortBreak
		if completed%cadence == 0 {
			next = model.PhaseLongBreak
		}
	}
	engine.phase = next
	engine.remaining = engine.settings.Seconds(next)

	if engine.settings.AutoTransition() && !engine.closed {
		epoch := engine.epoch
		engine.cancelResume = engine.options.Scheduler.After(engine.options.ResumeDelay, func() {
			engine.resume(epoch)
		})
	}

	engine.options.Logger.Info("phase complete", "finished", finished, "next", next, "auto", engine.cancelResume != nil)
	engine.emitLocked(Event{
		Type:     EventPhaseComplete,
		Finished: finished,
		Snapshot: engine.snapshotLocked(),
		At:       time.Now(),
	})
}

func (engine *Engine) resume(epoch uint64) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if epoch != engine.epoch || engine.running || engine.closed {
		return
	}
	engine.cancelResume = nil
	engine.running = true
	engine.startTicksLocked()
	engine.emitStateLocked(CommandResume)
}

func (engine *Engine) tickFor(epoch uint64) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if epoch != engine.epoch {
		return
	}
	engine.tickLocked()
}

func (engine *Engine) startTicksLocked() {
	engine.stopTicksLocked()
	epoch := engine.epoch
	engine.stopTicks = engine.options.Scheduler.Every(engine.options.TickInterval, func() {
		engine.tickFor(epoch)
	})
}

// stopTicksLocked also invalidates any tick already in flight.
func (engine *Engine) stopTicksLocked() {
	if engine.stopTicks != nil {
		engine.stopTicks()
		engine.stopTicks = nil
	}
	engine.epoch++
}

func (engine *Engine) cancelResumeLocked() {
	if engine.cancelResume != nil {
		engine.cancelResume()
		engine.cancelResume = nil
	}
}

func (engine *Engine) haltLocked() {
	engine.stopTicksLocked()
	engine.cancelResumeLocked()
	engine.running = false
}

func (engine *Engine) snapshotLocked() Snapshot {
	return Snapshot{
		Phase:         engine.phase,
		Remaining:     engine.remaining,
		Running:       engine.running,
		Completed:     engine.settings.CompletedWorkPhases(),
		ResumePending: engine.cancelResume != nil,
		Duration:      engine.settings.Seconds(engine.phase),
	}
}

func (engine *Engine) emitStateLocked(command Command) {
	engine.emitLocked(Event{
		Type:     EventStateChange,
		Command:  command,
		Snapshot: engine.snapshotLocked(),
		At:       time.Now(),
	})
}

func (engine *Engine) emitLocked(event Event) {
	for _, ch := range engine.events {
		select {
		case ch <- event:
		default:
		}
	}
}
