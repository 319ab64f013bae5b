package theme

import (
	"fyne.io/fyne/v2"

	"winget-installer/internal/logger"
)

// Applier re-themes every window of a Fyne app. It must be called on the
// UI goroutine; applying the palette already in use does nothing.
type Applier struct {
	app     fyne.App
	log     logger.Logger
	current *Palette
}

func NewApplier(app fyne.App, log logger.Logger) *Applier {
	if log == nil {
		log = logger.Nop()
	}
	return &Applier{app: app, log: log}
}

// Apply switches to the dark or light palette
func (a *Applier) Apply(dark bool) {
	p := PaletteFor(dark)
	if a.current != nil && a.current.Name == p.Name {
		return
	}

	a.current = &p
	a.app.Settings().SetTheme(NewWithPalette(p))

	a.log.Debug("Theme", "palette applied", map[string]interface{}{
		"palette": p.Name,
	})
}

// Current returns the palette last applied, if any
func (a *Applier) Current() (Palette, bool) {
	if a.current == nil {
		return Palette{}, false
	}
	return *a.current, true
}
