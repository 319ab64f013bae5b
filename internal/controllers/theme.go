package controllers

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"winget-installer/internal/logger"
	"winget-installer/internal/preferences"
	"winget-installer/internal/systheme"
	"winget-installer/internal/theme"
	"winget-installer/internal/watcher"
)

// PreferenceStore persists ThemePreferences
type PreferenceStore interface {
	Load() (preferences.ThemePreferences, error)
	Save(preferences.ThemePreferences) error
}

// Rethemer applies the light or dark palette to every visible surface
type Rethemer interface {
	Apply(dark bool)
}

// ThemeController is the single owner of the theme preferences. It keeps
// manual selection and system following mutually exclusive: FollowSystem is
// true exactly while the watcher runs.
//
// Like the watcher, it must only be used from the UI goroutine.
type ThemeController struct {
	store    PreferenceStore
	rethemer Rethemer
	watcher  *watcher.Watcher
	log      logger.Logger

	prefs     preferences.ThemePreferences
	listeners []func(preferences.ThemePreferences)

	// set while a compound action persists once at its end
	deferSave bool
}

// NewThemeController wires the watcher to the controller. interval <= 0 uses watcher.DefaultInterval.
func NewThemeController(
	store PreferenceStore,
	sampler systheme.Sampler,
	scheduler watcher.Scheduler,
	interval time.Duration,
	rethemer Rethemer,
	log logger.Logger,
) *ThemeController {
	if log == nil {
		log = logger.Nop()
	}

	tc := &ThemeController{
		store:    store,
		rethemer: rethemer,
		log:      log,
		prefs:    preferences.Defaults(),
	}
	tc.watcher = watcher.New(sampler, scheduler, interval, tc.systemThemeChanged, log)
	return tc
}

// Initialize loads the stored preferences and applies them. A stored
// follow-system flag starts the watcher.
func (tc *ThemeController) Initialize() {
	prefs, err := tc.store.Load()
	if err != nil {
		fields := map[string]interface{}{"error": err}
		if errors.Is(err, fs.ErrNotExist) {
			tc.log.Debug("ThemeController", "no stored preferences, using defaults", fields)
		} else {
			tc.log.Warning("ThemeController", "stored preferences unreadable, using defaults", fields)
		}
	}
	tc.prefs = prefs

	tc.log.Info("ThemeController", "preferences loaded", map[string]interface{}{
		"dark_mode":     prefs.DarkMode,
		"follow_system": prefs.FollowSystem,
	})

	if prefs.FollowSystem {
		tc.prefs.FollowSystem = false
		tc.SetFollowSystem(true)
		return
	}

	tc.rethemer.Apply(tc.prefs.DarkMode)
	tc.notify()
}

// SetDarkMode is the manual theme selection. It hands write authority back
// to the user by turning follow-system off first.
func (tc *ThemeController) SetDarkMode(dark bool) {
	tc.releaseFollow()

	tc.prefs.DarkMode = dark
	tc.rethemer.Apply(dark)
	tc.persist()
	tc.notify()
}

// ToggleDarkMode flips the manual dark-mode switch
func (tc *ThemeController) ToggleDarkMode() {
	tc.SetDarkMode(!tc.prefs.DarkMode)
}

// SetTheme selects a palette by name ("light" or "dark")
func (tc *ThemeController) SetTheme(name string) error {
	palette, ok := theme.ByName(name)
	if !ok {
		return fmt.Errorf("unknown theme %q", name)
	}
	tc.SetDarkMode(palette.Dark)
	return nil
}

// SetFollowSystem turns system following on or off. Enabling samples the OS
// setting immediately and applies it before the first scheduled tick.
func (tc *ThemeController) SetFollowSystem(enabled bool) {
	if enabled == tc.prefs.FollowSystem && enabled == tc.watcher.Running() {
		return
	}

	tc.prefs.FollowSystem = enabled
	if enabled {
		tc.deferSave = true
		tc.watcher.Start()
		tc.deferSave = false
	} else {
		tc.watcher.Stop()
	}

	tc.log.Info("ThemeController", "follow system changed", map[string]interface{}{
		"follow_system": enabled,
		"dark_mode":     tc.prefs.DarkMode,
	})

	tc.persist()
	tc.notify()
}

// ToggleFollowSystem flips the follow-system switch
func (tc *ThemeController) ToggleFollowSystem() {
	tc.SetFollowSystem(!tc.prefs.FollowSystem)
}

// RefreshSystemTheme re-reads the OS setting now when following it
func (tc *ThemeController) RefreshSystemTheme() {
	if !tc.prefs.FollowSystem {
		return
	}
	tc.watcher.Refresh()
}

// Preferences returns a copy of the current preferences
func (tc *ThemeController) Preferences() preferences.ThemePreferences {
	return tc.prefs
}

func (tc *ThemeController) WatcherRunning() bool {
	return tc.watcher.Running()
}

// OnChange registers a listener called after every theme action settles
func (tc *ThemeController) OnChange(listener func(preferences.ThemePreferences)) {
	tc.listeners = append(tc.listeners, listener)
}

// Shutdown stops the watcher on application exit. The stored preferences
// are left as they are so following resumes on the next start.
func (tc *ThemeController) Shutdown() {
	tc.watcher.Stop()
	tc.log.Debug("ThemeController", "shutdown completed", nil)
}

func (tc *ThemeController) releaseFollow() {
	if !tc.prefs.FollowSystem {
		return
	}
	tc.prefs.FollowSystem = false
	tc.watcher.Stop()
}

// systemThemeChanged is the watcher's onChange: it is the only writer of
// DarkMode while following.
func (tc *ThemeController) systemThemeChanged(dark bool) {
	tc.prefs.DarkMode = dark
	tc.rethemer.Apply(dark)

	if tc.deferSave {
		return
	}
	tc.persist()
	tc.notify()
}

func (tc *ThemeController) persist() {
	if err := tc.store.Save(tc.prefs); err != nil {
		tc.log.Warning("ThemeController", "could not save preferences", map[string]interface{}{
			"error": err,
		})
	}
}

func (tc *ThemeController) notify() {
	for _, listener := range tc.listeners {
		listener(tc.prefs)
	}
}
