package theme

import (
	"image/color"
	"testing"

	"pomodoro/internal/core/model"
)

func TestPresetsComplete(t *testing.T) {
	want := []string{"classic", "forest", "ocean", "sunset", "minimal", "purple", "nordic", "warm"}
	for _, id := range want {
		if !Known(id) {
			t.Errorf("missing preset %q", id)
		}
	}
	if got := len(IDs()); got != len(want) {
		t.Errorf("IDs() has %d entries, want %d", got, len(want))
	}
	if IDs()[0] != DefaultID {
		t.Errorf("IDs()[0] = %q, want %q", IDs()[0], DefaultID)
	}
}

func TestEveryRoleIsAColor(t *testing.T) {
	for _, id := range IDs() {
		for _, dark := range []bool{false, true} {
			for role, value := range Lookup(id, dark).Roles() {
				if value == "" {
					t.Errorf("%s dark=%v: role %s empty", id, dark, role)
					continue
				}
				if _, err := ParseColor(value); err != nil {
					t.Errorf("%s dark=%v: role %s: %v", id, dark, role, err)
				}
			}
		}
	}
}

func TestNamesUnique(t *testing.T) {
	seen := make(map[string]string)
	for _, id := range IDs() {
		name := Name(id)
		if other, ok := seen[name]; ok {
			t.Errorf("name %q shared by %s and %s", name, id, other)
		}
		seen[name] = id
	}
}

func TestLookupFallsBack(t *testing.T) {
	if Lookup("lava", true) != Lookup(DefaultID, true) {
		t.Error("unknown theme did not fall back to the default palette")
	}
	if Name("lava") != "Classic" {
		t.Errorf("Name(lava) = %q", Name("lava"))
	}
}

func TestAccentAndBackground(t *testing.T) {
	palette := Lookup("classic", false)
	tests := []struct {
		phase      model.Phase
		accent     string
		background string
	}{
		{model.PhaseWork, "#10B981", "#F0FDF4"},
		{model.PhaseShortBreak, "#F59E0B", "#FFFBEB"},
		{model.PhaseLongBreak, "#3B82F6", "#EFF6FF"},
	}
	for _, tt := range tests {
		if got := palette.Accent(tt.phase); got != tt.accent {
			t.Errorf("Accent(%s) = %s, want %s", tt.phase, got, tt.accent)
		}
		if got := palette.Background(tt.phase); got != tt.background {
			t.Errorf("Background(%s) = %s, want %s", tt.phase, got, tt.background)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input   string
		want    color.NRGBA
		wantErr bool
	}{
		{"#10B981", color.NRGBA{R: 0x10, G: 0xB9, B: 0x81, A: 0xff}, false},
		{"rgba(17, 24, 39, 0.8)", color.NRGBA{R: 17, G: 24, B: 39, A: 204}, false},
		{"rgba(255,255,255,1)", color.NRGBA{R: 255, G: 255, B: 255, A: 255}, false},
		{"#XYZXYZ", color.NRGBA{}, true},
		{"rgba(1, 2, 3)", color.NRGBA{}, true},
		{"rgba(1, 2, 3, 4)", color.NRGBA{}, true},
		{"teal", color.NRGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %+v, want %+v", tt.input, got, tt.want)
		}
	}
}

func TestOver(t *testing.T) {
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	tests := []struct {
		name string
		top  color.NRGBA
		want color.NRGBA
	}{
		{name: "opaque", top: color.NRGBA{R: 10, G: 20, B: 30, A: 255}, want: color.NRGBA{R: 10, G: 20, B: 30, A: 255}},
		{name: "transparent", top: color.NRGBA{R: 10, G: 20, B: 30, A: 0}, want: white},
		{name: "half", top: color.NRGBA{R: 0, G: 0, B: 0, A: 51}, want: color.NRGBA{R: 204, G: 204, B: 204, A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Over(tt.top, white); got != tt.want {
				t.Errorf("Over = %+v, want %+v", got, tt.want)
			}
		})
	}
}
