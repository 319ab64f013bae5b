// Package theme holds the two fixed palettes and the Fyne theme built from them.
package theme

import (
	"image/color"
)

const (
	LightName = "light"
	DarkName  = "dark"
)

// Palette is one of the two named colour sets applied to every surface
type Palette struct {
	Name       string
	Dark       bool
	Background color.NRGBA
	Foreground color.NRGBA
	Entry      color.NRGBA
	Text       color.NRGBA
	Pressed    color.NRGBA
}

var (
	Light = Palette{
		Name:       LightName,
		Background: hex(0xf0, 0xf0, 0xf0),
		Foreground: hex(0x00, 0x00, 0x00),
		Entry:      hex(0xff, 0xff, 0xff),
		Text:       hex(0xff, 0xff, 0xff),
		Pressed:    hex(0xd9, 0xd9, 0xd9),
	}

	Dark = Palette{
		Name:       DarkName,
		Dark:       true,
		Background: hex(0x2b, 0x2b, 0x2b),
		Foreground: hex(0xea, 0xea, 0xea),
		Entry:      hex(0x3c, 0x3f, 0x41),
		Text:       hex(0x1e, 0x1e, 0x1e),
		Pressed:    hex(0x25, 0x25, 0x25),
	}
)

// PaletteFor picks Dark or Light
func PaletteFor(dark bool) Palette {
	if dark {
		return Dark
	}
	return Light
}

// ByName looks a palette up by "light" or "dark"
func ByName(name string) (Palette, bool) {
	switch name {
	case LightName:
		return Light, true
	case DarkName:
		return Dark, true
	}
	return Palette{}, false
}

func hex(r, g, b uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}
