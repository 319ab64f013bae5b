package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"
)

// Theme overrides the surface colours of the default Fyne theme with a
// Palette and pins the variant so the OS setting cannot flip it underneath.
type Theme struct {
	base    fyne.Theme
	palette Palette
}

// New builds the theme for the dark or light palette
func New(dark bool) *Theme {
	return NewWithPalette(PaletteFor(dark))
}

func NewWithPalette(p Palette) *Theme {
	return &Theme{
		base:    fynetheme.DefaultTheme(),
		palette: p,
	}
}

func (t *Theme) Palette() Palette {
	return t.palette
}

func (t *Theme) Variant() fyne.ThemeVariant {
	if t.palette.Dark {
		return fynetheme.VariantDark
	}
	return fynetheme.VariantLight
}

func (t *Theme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	if c, ok := t.paletteColor(name); ok {
		return c
	}
	return t.base.Color(name, t.Variant())
}

func (t *Theme) paletteColor(name fyne.ThemeColorName) (color.Color, bool) {
	p := t.palette
	switch name {
	case fynetheme.ColorNameBackground:
		return p.Background, true
	case fynetheme.ColorNameForeground:
		return p.Foreground, true
	case fynetheme.ColorNameButton,
		fynetheme.ColorNameInputBackground,
		fynetheme.ColorNameMenuBackground,
		fynetheme.ColorNameOverlayBackground,
		fynetheme.ColorNameScrollBar:
		return p.Entry, true
	case fynetheme.ColorNameHeaderBackground:
		return p.Text, true
	case fynetheme.ColorNamePressed,
		fynetheme.ColorNameSeparator:
		return p.Pressed, true
	}
	return nil, false
}

func (t *Theme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *Theme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *Theme) Size(name fyne.ThemeSizeName) float32 {
	return t.base.Size(name)
}
