package window

import (
	"image/color"

	"pomodoro/internal/core/model"
	"pomodoro/internal/ui/theme"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"
)

var (
	lightBase = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	darkBase  = color.NRGBA{R: 0x17, G: 0x17, B: 0x18, A: 0xff}
)

// appTheme maps a palette onto Fyne's colour roles for one phase.
type appTheme struct {
	variant    fyne.ThemeVariant
	accent     color.NRGBA
	background color.NRGBA
	text       color.NRGBA
	input      color.NRGBA
	overlay    color.NRGBA
}

func newAppTheme(palette theme.Palette, phase model.Phase, dark bool) *appTheme {
	variant, base := fynetheme.VariantLight, lightBase
	if dark {
		variant, base = fynetheme.VariantDark, darkBase
	}
	background := theme.Over(theme.MustColor(palette.Background(phase)), base)
	return &appTheme{
		variant:    variant,
		accent:     theme.MustColor(palette.Accent(phase)),
		background: background,
		text:       theme.MustColor(palette.Text),
		input:      theme.Over(theme.MustColor(palette.InputBg), background),
		overlay:    theme.Over(theme.MustColor(palette.SettingsBg), base),
	}
}

func (current *appTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case fynetheme.ColorNamePrimary, fynetheme.ColorNameFocus:
		return current.accent
	case fynetheme.ColorNameBackground:
		return current.background
	case fynetheme.ColorNameForeground:
		return current.text
	case fynetheme.ColorNameInputBackground:
		return current.input
	case fynetheme.ColorNameOverlayBackground, fynetheme.ColorNameMenuBackground:
		return current.overlay
	}
	return fynetheme.DefaultTheme().Color(name, current.variant)
}

func (current *appTheme) Font(style fyne.TextStyle) fyne.Resource {
	return fynetheme.DefaultTheme().Font(style)
}

func (current *appTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return fynetheme.DefaultTheme().Icon(name)
}

func (current *appTheme) Size(name fyne.ThemeSizeName) float32 {
	return fynetheme.DefaultTheme().Size(name)
}
