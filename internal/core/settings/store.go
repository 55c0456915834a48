package settings

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"sync"

	"pomodoro/internal/core/model"
	"pomodoro/internal/storage"
)

// ErrUnknownKey indicates a settings key that the store does not manage.
var ErrUnknownKey = errors.New("unknown settings key")

// Key names a persisted setting. The values double as storage keys.
type Key string

const (
	KeyWorkMinutes              Key = "workMinutes"
	KeyBreakMinutes             Key = "breakMinutes"
	KeyLongBreakMinutes         Key = "longBreakMinutes"
	KeyPomodorosBeforeLongBreak Key = "pomodorosBeforeLongBreak"
	KeyAutoTransition           Key = "autoTransition"
	KeyVolume                   Key = "volume"
	KeyMuted                    Key = "muted"
	KeyCompletedWorkPhases      Key = "completedWorkPhases"
	KeyTheme                    Key = "theme"
	KeyDarkMode                 Key = "darkMode"
)

// EditableKeys lists the keys accepted by SetText, in display order.
var EditableKeys = []Key{
	KeyWorkMinutes,
	KeyBreakMinutes,
	KeyLongBreakMinutes,
	KeyPomodorosBeforeLongBreak,
	KeyAutoTransition,
	KeyVolume,
	KeyTheme,
	KeyDarkMode,
}

var allKeys = append(append([]Key(nil), EditableKeys...), KeyCompletedWorkPhases, KeyMuted)

// ParseKey resolves a key name, case-insensitively.
func ParseKey(name string) (Key, error) {
	for _, key := range allKeys {
		if strings.EqualFold(string(key), name) {
			return key, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownKey, name)
}

// Values is a point-in-time copy of every setting.
type Values struct {
	WorkMinutes              int
	BreakMinutes             int
	LongBreakMinutes         int
	PomodorosBeforeLongBreak int
	AutoTransition           bool
	Volume                   float64
	Muted                    bool
	CompletedWorkPhases      int
	Theme                    string
	DarkMode                 bool
}

// Durations returns the phase lengths as a model value.
func (values Values) Durations() model.Durations {
	return model.Durations{
		Work:      values.WorkMinutes,
		Break:     values.BreakMinutes,
		LongBreak: values.LongBreakMinutes,
	}
}

// DefaultValues returns the settings used when nothing is persisted.
func DefaultValues() Values {
	return Values{
		WorkMinutes:              model.DefaultWorkMinutes,
		BreakMinutes:             model.DefaultBreakMinutes,
		LongBreakMinutes:         model.DefaultLongBreakMinutes,
		PomodorosBeforeLongBreak: model.DefaultCadence,
		AutoTransition:           false,
		Volume:                   model.DefaultVolume,
		Muted:                    false,
		Theme:                    model.DefaultTheme,
	}
}

// Options configures a Store.
type Options struct {
	Logger *slog.Logger
	// Themes restricts SetTheme to known ids. Empty accepts any non-empty id.
	Themes []string
}

// Store owns user settings and writes each change through to a KV store.
type Store struct {
	mu     sync.Mutex
	kv     storage.KV
	logger *slog.Logger
	themes map[string]bool
	values Values
}

// Open loads every setting from kv, substituting defaults for absent or corrupt values.
func Open(kv storage.KV, options Options) *Store {
	if options.Logger == nil {
		options.Logger = slog.Default()
	}
	store := &Store{
		kv:     kv,
		logger: options.Logger,
		values: DefaultValues(),
	}
	if len(options.Themes) > 0 {
		store.themes = make(map[string]bool, len(options.Themes))
		for _, id := range options.Themes {
			store.themes[id] = true
		}
	}
	store.load()
	return store
}

func (store *Store) load() {
	values := &store.values

	values.WorkMinutes = store.loadInt(KeyWorkMinutes, values.WorkMinutes, model.WorkMinutesRange)
	values.BreakMinutes = store.loadInt(KeyBreakMinutes, values.BreakMinutes, model.BreakMinutesRange)
	values.LongBreakMinutes = store.loadInt(KeyLongBreakMinutes, values.LongBreakMinutes, model.LongBreakMinutesRange)
	values.PomodorosBeforeLongBreak = store.loadInt(KeyPomodorosBeforeLongBreak, values.PomodorosBeforeLongBreak, model.CadenceRange)
	values.CompletedWorkPhases = store.loadInt(KeyCompletedWorkPhases, 0, model.Range{Min: 0, Max: math.MaxInt32})
	values.AutoTransition = store.loadBool(KeyAutoTransition, values.AutoTransition)
	values.DarkMode = store.loadBool(KeyDarkMode, values.DarkMode)

	if raw, ok := store.kv.Get(string(KeyVolume)); ok {
		if volume, ok := parseVolume(raw); ok {
			values.Volume = volume
		}
	}
	// The muted flag is a cache of volume == 0; volume wins on disagreement.
	values.Muted = values.Volume == 0

	if raw, ok := store.kv.Get(string(KeyTheme)); ok && store.themeAllowed(raw) {
		values.Theme = raw
	}
}

func (store *Store) loadInt(key Key, fallback int, bounds model.Range) int {
	raw, ok := store.kv.Get(string(key))
	if !ok {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		store.logger.Debug("ignoring corrupt setting", "key", key, "value", raw)
		return fallback
	}
	return bounds.Clamp(parsed)
}

func (store *Store) loadBool(key Key, fallback bool) bool {
	raw, ok := store.kv.Get(string(key))
	if !ok {
		return fallback
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		store.logger.Debug("ignoring corrupt setting", "key", key, "value", raw)
		return fallback
	}
	return parsed
}

// Values returns a copy of the current settings.
func (store *Store) Values() Values {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.values
}

// WorkMinutes returns the focus phase length in minutes.
func (store *Store) WorkMinutes() int {
	return store.Values().WorkMinutes
}

// BreakMinutes returns the short break length in minutes.
func (store *Store) BreakMinutes() int {
	return store.Values().BreakMinutes
}

// LongBreakMinutes returns the long break length in minutes.
func (store *Store) LongBreakMinutes() int {
	return store.Values().LongBreakMinutes
}

// Minutes returns the configured length of phase in minutes.
func (store *Store) Minutes(phase model.Phase) int {
	return store.Values().Durations().Minutes(phase)
}

// Seconds returns the configured length of phase in seconds.
func (store *Store) Seconds(phase model.Phase) int {
	return store.Values().Durations().Seconds(phase)
}

// PomodorosBeforeLongBreak returns how many focus phases earn a long break.
func (store *Store) PomodorosBeforeLongBreak() int {
	return store.Values().PomodorosBeforeLongBreak
}

// AutoTransition reports whether the next phase starts on its own.
func (store *Store) AutoTransition() bool {
	return store.Values().AutoTransition
}

// Volume returns the completion sound volume in [0,1].
func (store *Store) Volume() float64 {
	return store.Values().Volume
}

// Muted reports whether completion sounds are silenced, which is volume == 0.
func (store *Store) Muted() bool {
	return store.Values().Muted
}

// CompletedWorkPhases returns the focus phases finished since the last reset.
func (store *Store) CompletedWorkPhases() int {
	return store.Values().CompletedWorkPhases
}

// Theme returns the selected theme id.
func (store *Store) Theme() string {
	return store.Values().Theme
}

// DarkMode reports whether the dark palette is selected.
func (store *Store) DarkMode() bool {
	return store.Values().DarkMode
}

// SetWorkMinutes stores n clamped to [1,180].
func (store *Store) SetWorkMinutes(n int) {
	store.setInt(KeyWorkMinutes, &store.values.WorkMinutes, model.WorkMinutesRange.Clamp(n))
}

// SetBreakMinutes stores n clamped to [1,60].
func (store *Store) SetBreakMinutes(n int) {
	store.setInt(KeyBreakMinutes, &store.values.BreakMinutes, model.BreakMinutesRange.Clamp(n))
}

// SetLongBreakMinutes stores n clamped to [1,120].
func (store *Store) SetLongBreakMinutes(n int) {
	store.setInt(KeyLongBreakMinutes, &store.values.LongBreakMinutes, model.LongBreakMinutesRange.Clamp(n))
}

// SetPomodorosBeforeLongBreak stores n clamped to [1,12].
func (store *Store) SetPomodorosBeforeLongBreak(n int) {
	store.setInt(KeyPomodorosBeforeLongBreak, &store.values.PomodorosBeforeLongBreak, model.CadenceRange.Clamp(n))
}

// SetMinutes stores the duration of phase, clamped to that phase's range.
func (store *Store) SetMinutes(phase model.Phase, n int) {
	switch phase {
	case model.PhaseShortBreak:
		store.SetBreakMinutes(n)
	case model.PhaseLongBreak:
		store.SetLongBreakMinutes(n)
	default:
		store.SetWorkMinutes(n)
	}
}

// SetAutoTransition toggles automatic resumption after a phase completes.
func (store *Store) SetAutoTransition(enabled bool) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.values.AutoTransition = enabled
	store.persistLocked(KeyAutoTransition, strconv.FormatBool(enabled))
}

// SetVolume stores v clamped to [0,1] and derives the muted flag.
// NaN and infinities are rejected and the previous volume is kept.
func (store *Store) SetVolume(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	v = math.Max(0, math.Min(1, v))

	store.mu.Lock()
	defer store.mu.Unlock()
	store.values.Volume = v
	store.values.Muted = v == 0
	store.persistLocked(KeyVolume, strconv.FormatFloat(v, 'f', -1, 64))
	store.persistLocked(KeyMuted, strconv.FormatBool(store.values.Muted))
	return true
}

// SetTheme selects a palette id. Unknown ids are rejected.
func (store *Store) SetTheme(id string) bool {
	if !store.themeAllowed(id) {
		return false
	}
	store.mu.Lock()
	defer store.mu.Unlock()
	store.values.Theme = id
	store.persistLocked(KeyTheme, id)
	return true
}

// SetDarkMode selects the dark or light palette.
func (store *Store) SetDarkMode(enabled bool) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.values.DarkMode = enabled
	store.persistLocked(KeyDarkMode, strconv.FormatBool(enabled))
}

// RecordCompletion increments the completed work phase tally and returns the new count.
func (store *Store) RecordCompletion() int {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.values.CompletedWorkPhases++
	store.persistLocked(KeyCompletedWorkPhases, strconv.Itoa(store.values.CompletedWorkPhases))
	return store.values.CompletedWorkPhases
}

// ResetCompletedCount sets the tally back to zero.
func (store *Store) ResetCompletedCount() {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.values.CompletedWorkPhases = 0
	store.persistLocked(KeyCompletedWorkPhases, "0")
}

// SetText applies raw user input to key. Input that does not parse is rejected
// and the previous value is kept; numeric input is clamped.
func (store *Store) SetText(key Key, raw string) bool {
	raw = strings.TrimSpace(raw)
	switch key {
	case KeyWorkMinutes, KeyBreakMinutes, KeyLongBreakMinutes, KeyPomodorosBeforeLongBreak:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return false
		}
		switch key {
		case KeyWorkMinutes:
			store.SetWorkMinutes(n)
		case KeyBreakMinutes:
			store.SetBreakMinutes(n)
		case KeyLongBreakMinutes:
			store.SetLongBreakMinutes(n)
		default:
			store.SetPomodorosBeforeLongBreak(n)
		}
		return true
	case KeyAutoTransition, KeyDarkMode:
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			return false
		}
		if key == KeyAutoTransition {
			store.SetAutoTransition(enabled)
		} else {
			store.SetDarkMode(enabled)
		}
		return true
	case KeyVolume:
		volume, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return false
		}
		return store.SetVolume(volume)
	case KeyTheme:
		return store.SetTheme(raw)
	case KeyCompletedWorkPhases:
		if raw != "0" {
			return false
		}
		store.ResetCompletedCount()
		return true
	}
	return false
}

// Text returns the persisted string form of key.
func (store *Store) Text(key Key) (string, error) {
	values := store.Values()
	switch key {
	case KeyWorkMinutes:
		return strconv.Itoa(values.WorkMinutes), nil
	case KeyBreakMinutes:
		return strconv.Itoa(values.BreakMinutes), nil
	case KeyLongBreakMinutes:
		return strconv.Itoa(values.LongBreakMinutes), nil
	case KeyPomodorosBeforeLongBreak:
		return strconv.Itoa(values.PomodorosBeforeLongBreak), nil
	case KeyAutoTransition:
		return strconv.FormatBool(values.AutoTransition), nil
	case KeyVolume:
		return strconv.FormatFloat(values.Volume, 'f', -1, 64), nil
	case KeyMuted:
		return strconv.FormatBool(values.Muted), nil
	case KeyCompletedWorkPhases:
		return strconv.Itoa(values.CompletedWorkPhases), nil
	case KeyTheme:
		return values.Theme, nil
	case KeyDarkMode:
		return strconv.FormatBool(values.DarkMode), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
}

func (store *Store) setInt(key Key, field *int, value int) {
	store.mu.Lock()
	defer store.mu.Unlock()
	*field = value
	store.persistLocked(key, strconv.Itoa(value))
}

func (store *Store) persistLocked(key Key, value string) {
	if err := store.kv.Set(string(key), value); err != nil {
		store.logger.Warn("persist setting failed", "key", key, "error", err)
	}
}

func (store *Store) themeAllowed(id string) bool {
	if id == "" {
		return false
	}
	if store.themes == nil {
		return true
	}
	return store.themes[id]
}

func parseVolume(raw string) (float64, bool) {
	volume, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(volume) || math.IsInf(volume, 0) {
		return 0, false
	}
	return math.Max(0, math.Min(1, volume)), true
}
