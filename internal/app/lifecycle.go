package app

import (
	"winget-installer/internal/controllers"
	"winget-installer/internal/gui/sync"
	"winget-installer/internal/services"
	"winget-installer/internal/shutdown"
)

// registerLifecycle registers components in dependency order; shutdown runs in
// reverse so running installs are cancelled before the UI update loop stops
// and the theme watcher stops last. The package service also derives its
// context from m, so processes are killed as soon as shutdown begins.
func registerLifecycle(
	m *shutdown.Manager,
	themeCtl *controllers.ThemeController,
	coordinator *sync.Coordinator,
	packages *services.PackageService,
) *shutdown.Manager {
	m.Register("theme", themeCtl)
	m.Register("ui-updates", coordinator)
	m.Register("packages", packages)
	return m
}
