package theme

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"pomodoro/internal/core/model"
)

// DefaultID is used when a theme id is unknown.
const DefaultID = "classic"

// Palette holds the named color roles of one theme variant.
type Palette struct {
	Work                string
	Break               string
	LongBreak           string
	BackgroundWork      string
	BackgroundBreak     string
	BackgroundLongBreak string
	Text                string
	InputBg             string
	SettingsBg          string
}

// Preset is a named theme with light and dark variants.
type Preset struct {
	Name  string
	Light Palette
	Dark  Palette
}

// Accent returns the stroke color for phase.
func (palette Palette) Accent(phase model.Phase) string {
	switch phase {
	case model.PhaseShortBreak:
		return palette.Break
	case model.PhaseLongBreak:
		return palette.LongBreak
	default:
		return palette.Work
	}
}

// Background returns the backdrop color for phase.
func (palette Palette) Background(phase model.Phase) string {
	switch phase {
	case model.PhaseShortBreak:
		return palette.BackgroundBreak
	case model.PhaseLongBreak:
		return palette.BackgroundLongBreak
	default:
		return palette.BackgroundWork
	}
}

// Roles returns every role keyed by name.
func (palette Palette) Roles() map[string]string {
	return map[string]string{
		"work":                palette.Work,
		"break":               palette.Break,
		"longBreak":           palette.LongBreak,
		"backgroundWork":      palette.BackgroundWork,
		"backgroundBreak":     palette.BackgroundBreak,
		"backgroundLongBreak": palette.BackgroundLongBreak,
		"text":                palette.Text,
		"inputBg":             palette.InputBg,
		"settingsBg":          palette.SettingsBg,
	}
}

// Lookup returns the palette for id, falling back to the default theme.
func Lookup(id string, dark bool) Palette {
	preset, ok := presets[id]
	if !ok {
		preset = presets[DefaultID]
	}
	if dark {
		return preset.Dark
	}
	return preset.Light
}

// Known reports whether id names a preset.
func Known(id string) bool {
	_, ok := presets[id]
	return ok
}

// Name returns the display name of id.
func Name(id string) string {
	if preset, ok := presets[id]; ok {
		return preset.Name
	}
	return presets[DefaultID].Name
}

// IDs returns every preset id, default first then alphabetical.
func IDs() []string {
	ids := make([]string, 0, len(presets))
	for id := range presets {
		if id != DefaultID {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return append([]string{DefaultID}, ids...)
}

// ParseColor decodes "#RRGGBB" and "rgba(r, g, b, a)" values.
func ParseColor(value string) (color.NRGBA, error) {
	value = strings.TrimSpace(value)
	if strings.HasPrefix(value, "#") && len(value) == 7 {
		rgb, err := strconv.ParseUint(value[1:], 16, 32)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("parse color %q: %w", value, err)
		}
		return color.NRGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 0xff}, nil
	}

	if strings.HasPrefix(value, "rgba(") && strings.HasSuffix(value, ")") {
		parts := strings.Split(value[len("rgba("):len(value)-1], ",")
		if len(parts) != 4 {
			return color.NRGBA{}, fmt.Errorf("parse color %q: want 4 components", value)
		}
		var channels [3]uint8
		for i := 0; i < 3; i++ {
			channel, err := strconv.ParseUint(strings.TrimSpace(parts[i]), 10, 8)
			if err != nil {
				return color.NRGBA{}, fmt.Errorf("parse color %q: %w", value, err)
			}
			channels[i] = uint8(channel)
		}
		alpha, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || alpha < 0 || alpha > 1 {
			return color.NRGBA{}, fmt.Errorf("parse color %q: bad alpha", value)
		}
		return color.NRGBA{R: channels[0], G: channels[1], B: channels[2], A: uint8(alpha*255 + 0.5)}, nil
	}

	return color.NRGBA{}, fmt.Errorf("parse color %q: unsupported format", value)
}

// MustColor is ParseColor for the static preset table.
func MustColor(value string) color.NRGBA {
	parsed, err := ParseColor(value)
	if err != nil {
		panic(err)
	}
	return parsed
}

// Over composites a translucent color onto an opaque base.
func Over(top, base color.NRGBA) color.NRGBA {
	alpha := float64(top.A) / 255
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a)*alpha + float64(b)*(1-alpha) + 0.5)
	}
	return color.NRGBA{R: mix(top.R, base.R), G: mix(top.G, base.G), B: mix(top.B, base.B), A: 0xff}
}
