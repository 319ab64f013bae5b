package app

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"winget-installer/internal/config"
	"winget-installer/internal/controllers"
	"winget-installer/internal/gui/sync"
	"winget-installer/internal/logger"
	"winget-installer/internal/models"
	"winget-installer/internal/packagemanager"
	"winget-installer/internal/preferences"
	"winget-installer/internal/services"
	"winget-installer/internal/shutdown"
	"winget-installer/internal/systheme"
	"winget-installer/internal/theme"
	"winget-installer/internal/views"
	"winget-installer/internal/watcher"
)

const (
	AppName        = "WinGet Package Installer"
	AppID          = "com.wingetinstaller.desktop"
	AppDescription = "Install popular Windows applications with winget or Chocolatey."
	WindowWidth    = 720
	WindowHeight   = 640
)

// AppVersion is overridden at build time with -ldflags
var AppVersion = "1.0.0"

type Application struct {
	fyneApp     fyne.App
	window      fyne.Window
	log         logger.Logger
	themeCtl    *controllers.ThemeController
	packages    *services.PackageService
	coordinator *sync.Coordinator
	mainCtl     *controllers.MainController
	mainView    *views.MainView
	lifecycle   *shutdown.Manager
}

func NewApplication(cfg config.Config, log logger.Logger) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = preferences.DefaultDir()
	}
	store := preferences.NewStore(preferences.PathIn(dataDir))

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"settings":      store.Path(),
		"poll_interval": cfg.PollInterval.String(),
		"manager":       cfg.Manager,
	})

	themeCtl := controllers.NewThemeController(
		store,
		systheme.System(log),
		watcher.NewDispatchScheduler(fyne.Do),
		cfg.PollInterval,
		theme.NewApplier(fyneApp, log),
		log,
	)

	lifecycle := shutdown.NewManager(log)
	coordinator := sync.NewCoordinator()
	packages := services.NewPackageService(lifecycle.Context(), packagemanager.ExecRunner{}, coordinator, log)
	packages.SetManager(cfg.PackageManager())

	mainView := views.NewMainView(window, models.DefaultCatalog(), managerNames(), views.AboutInfo{
		Name:        AppName,
		Description: AppDescription,
		Version:     AppVersion,
	})
	coordinator.SetStatusBar(mainView)
	coordinator.SetResultsPanel(mainView)
	coordinator.SetNoticeHandler(mainView)

	mainCtl := controllers.NewMainController(themeCtl, packages, log)

	a := &Application{
		fyneApp:     fyneApp,
		window:      window,
		log:         log,
		themeCtl:    themeCtl,
		packages:    packages,
		coordinator: coordinator,
		mainCtl:     mainCtl,
		mainView:    mainView,
		lifecycle:   registerLifecycle(lifecycle, themeCtl, coordinator, packages),
	}

	// preferences are applied before the first frame so the window never
	// flashes the wrong palette
	themeCtl.Initialize()
	mainCtl.SetMainView(mainView)
	mainView.SetExitHandler(a.quit)

	log.Info("Application", "initialization complete", nil)
	return a, nil
}

func managerNames() []string {
	managers := packagemanager.Managers()
	names := make([]string, len(managers))
	for i, m := range managers {
		names[i] = m.DisplayName()
	}
	return names
}

func (a *Application) Run() error {
	if a.window == nil {
		return fmt.Errorf("application window not created")
	}

	a.window.SetCloseIntercept(a.quit)
	a.lifecycle.Listen(func() {
		fyne.Do(a.quit)
	})

	go a.coordinator.Run()

	a.window.Show()
	a.log.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	return nil
}

// quit runs on the UI goroutine. It blocks the UI while components stop, so
// no watcher tick can interleave with the theme controller shutdown.
func (a *Application) quit() {
	a.log.Info("Application", "shutdown requested", nil)
	a.lifecycle.Shutdown()
	a.fyneApp.Quit()
}
