package preferences

import (
	"pomodoro/internal/core/model"
	"pomodoro/internal/core/settings"
)

// field describes one numeric entry row.
type field struct {
	key    settings.Key
	label  string
	unit   string
	bounds model.Range
}

var fields = []field{
	{key: settings.KeyWorkMinutes, label: "Focus", unit: "min", bounds: model.WorkMinutesRange},
	{key: settings.KeyBreakMinutes, label: "Short break", unit: "min", bounds: model.BreakMinutesRange},
	{key: settings.KeyLongBreakMinutes, label: "Long break", unit: "min", bounds: model.LongBreakMinutesRange},
	{key: settings.KeyPomodorosBeforeLongBreak, label: "Long break every", unit: "pomodoros", bounds: model.CadenceRange},
}
